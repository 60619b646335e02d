package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

type sectorRow struct {
	NUp  int `json:"n_up"`
	NDn  int `json:"n_dn"`
	Size int `json:"size"`
}

func (a *app) sectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sectors",
		Short: "List the (n_up, n_dn) sectors and their sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				data  []sectorRow
				rows  [][]string
				total int
			)
			for sector := range a.basis.Sectors() {
				f := sector.Filling()
				data = append(data, sectorRow{NUp: f.Up, NDn: f.Dn, Size: sector.Size()})
				rows = append(rows, []string{strconv.Itoa(f.Up), strconv.Itoa(f.Dn), strconv.Itoa(sector.Size())})
				total += sector.Size()
			}
			a.logger.WithSites(a.basis.NumSites()).Debug("sectors listed", "count", len(data), "total", total)
			return render(cmd.OutOrStdout(), a.cfg.Format, []string{"n_up", "n_dn", "size"}, rows, data)
		},
	}
}
