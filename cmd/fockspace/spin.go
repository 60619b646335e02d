package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/fockspace"
)

const (
	fillingF = "filling"
	spinF    = "spin"
)

type spinRow struct {
	Index int    `json:"index"`
	State uint64 `json:"state"`
	Bits  string `json:"bits"`
	Label string `json:"label"`
}

func (a *app) spinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spin",
		Short: "List the states of a single-species sector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := cmd.Flags().GetInt(fillingF)
			if err != nil {
				return err
			}
			s, err := cmd.Flags().GetString(spinF)
			if err != nil {
				return err
			}
			sigma, err := parseSpin(s)
			if err != nil {
				return err
			}

			sector := a.basis.SpinSector(n, sigma)
			enc := sector.Encoding()

			var (
				data []spinRow
				rows [][]string
			)
			for i, st := range sector.SpinStates() {
				r := spinRow{
					Index: i,
					State: uint64(st),
					Bits:  st.BinStr(enc),
					Label: sector.Label(st, fockspace.Ket),
				}
				data = append(data, r)
				rows = append(rows, []string{strconv.Itoa(i), strconv.FormatUint(r.State, 10), r.Bits, r.Label})
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, []string{"index", "state", "bits", "label"}, rows, data)
		},
	}
	cmd.Flags().Int(fillingF, 0, "Number of particles. An unknown filling lists every state.")
	cmd.Flags().String(spinF, "up", "Spin species: up or dn.")

	return cmd
}
