package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yungbote/catalog-backend/internal/app"
)

type resourceList []string

func (l *resourceList) String() string { return strings.Join(*l, ",") }
func (l *resourceList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v != "" {
		*l = append(*l, v)
	}
	return nil
}

func main() {
	var resources resourceList
	var olderThan time.Duration
	var dryRun bool
	flag.Var(&resources, "resource", "categories|genres|cast_members|videos (repeatable, default all)")
	flag.DurationVar(&olderThan, "older-than", 30*24*time.Hour, "purge rows soft-deleted before now minus this duration")
	flag.BoolVar(&dryRun, "dry-run", false, "print the ids that would be purged")
	flag.Parse()

	ctx := context.Background()
	application, err := app.New(ctx)
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}

	repos := map[string]purger{
		"categories":   application.Repos.Category,
		"genres":       application.Repos.Genre,
		"cast_members": application.Repos.CastMember,
		"videos":       application.Repos.Video,
	}
	err = purgeResources(ctx, application.Log, os.Stdout, repos, purgeOptions{
		Resources: resources,
		Cutoff:    time.Now().Add(-olderThan),
		DryRun:    dryRun,
	})
	application.Close()
	if err != nil {
		fmt.Printf("purge: %v\n", err)
		os.Exit(1)
	}
}
