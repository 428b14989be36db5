// Package validation checks decoded request bodies against static rule sets.
//
// A RuleSet maps field names to comma separated rule lists:
//
//	var categoryRules = validation.RuleSet{
//	    "name":        "required,string,max=255",
//	    "description": "nullable,string",
//	    "is_active":   "boolean",
//	}
//
// Type rules (string, boolean, integer, year, array) coerce the raw JSON value
// first. Remaining value rules (max, oneof, ...) are handed to the shared
// go-playground/validator instance. exists=<table> runs last and asks an
// ExistenceChecker which ids reference live rows.
//
// Every failing field is reported in one *Error.
package validation
