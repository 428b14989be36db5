package aggregates

import "testing"

func TestCatalogContractsOwnTheirTransactions(t *testing.T) {
	for _, c := range []Contract{GenreAggregateContract, VideoAggregateContract} {
		if !c.RequiresAggregateOwnedTx() {
			t.Fatalf("%s: want aggregate-owned tx", c.Name)
		}
		if c.ReadPolicy != ReadPolicyInvariantScoped {
			t.Fatalf("%s: read policy %q", c.Name, c.ReadPolicy)
		}
	}
	if (Contract{}).RequiresAggregateOwnedTx() {
		t.Fatal("zero contract should not claim tx ownership")
	}
}
