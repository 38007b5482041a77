package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/floorcrawl/internal/entity"
	"github.com/samdwyer/floorcrawl/internal/gamedata"
	"github.com/samdwyer/floorcrawl/internal/rng"
	"github.com/samdwyer/floorcrawl/internal/world"
)

var genFloors int

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate floors for the seed and print them",
	Long: `Generate floors the way a new game would and print them as text,
with a line of statistics under each. Useful when editing the catalogs.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVarP(&genFloors, "floors", "n", 1, "number of consecutive floors to print")
}

func runGen(cmd *cobra.Command, args []string) error {
	catalog, err := gamedata.LoadDefaultCatalog()
	if err != nil {
		return fmt.Errorf("failed to load object catalog: %w", err)
	}
	r := rng.New(cfg.SeedValue())
	gen := world.NewGenerator(catalog, cfg.Game().Gen, r)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	player := catalog.MustClass(gamedata.ClassPlayer).NewObject(0, 0)
	actors := []*entity.Object{player}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d\n", r.Seed())

	for floor := 1; floor <= genFloors; floor++ {
		var m *world.Map
		m, actors = gen.MakeMap(ctx, actors)
		fmt.Fprintln(out, strings.Join(world.ASCII(m, actors), "\n"))

		items := 0
		for y := range m.Tiles {
			for x := range m.Tiles[y] {
				for _, item := range m.Tiles[y][x].Items {
					if item.PickUp {
						items++
					}
				}
			}
		}
		fmt.Fprintf(out, "floor %d: %d rooms, %d monsters, %d items, unreachable rooms %v\n\n",
			floor, len(m.Rooms), len(actors)-1, items, world.UnreachableRooms(m, m.Entry))
	}
	return nil
}
