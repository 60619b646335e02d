package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/fockspace"
)

const (
	upF  = "up"
	dnF  = "dn"
	braF = "bra"
)

type stateRow struct {
	Index int    `json:"index"`
	Up    string `json:"up"`
	Dn    string `json:"dn"`
	Label string `json:"label"`
}

func (a *app) statesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states",
		Short: "List the states of a sector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nUp, err := cmd.Flags().GetInt(upF)
			if err != nil {
				return err
			}
			nDn, err := cmd.Flags().GetInt(dnF)
			if err != nil {
				return err
			}
			bra, err := cmd.Flags().GetBool(braF)
			if err != nil {
				return err
			}

			sector, err := a.sector(nUp, nDn)
			if err != nil {
				return err
			}

			notation := fockspace.Ket
			if bra {
				notation = fockspace.Bra
			}

			enc := sector.Encoding()
			var (
				data []stateRow
				rows [][]string
			)
			i := 0
			for st := range sector.States() {
				r := stateRow{
					Index: i,
					Up:    st.Up.BinStr(enc),
					Dn:    st.Dn.BinStr(enc),
					Label: sector.Label(st, notation),
				}
				data = append(data, r)
				rows = append(rows, []string{strconv.Itoa(r.Index), r.Up, r.Dn, r.Label})
				i++
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, []string{"index", "up", "dn", "label"}, rows, data)
		},
	}
	cmd.Flags().Int(upF, 0, "Number of spin-up particles.")
	cmd.Flags().Int(dnF, 0, "Number of spin-down particles.")
	cmd.Flags().Bool(braF, false, "Render labels as bras instead of kets.")

	return cmd
}
