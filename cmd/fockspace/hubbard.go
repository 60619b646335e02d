package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hupe1980/fockspace/hamiltonian"
)

const (
	uF        = "u"
	tF        = "t"
	epsF      = "eps"
	muF       = "mu"
	periodicF = "periodic"
	countF    = "count"
)

type hubbardResult struct {
	Model    hamiltonian.HubbardModel `json:"model"`
	NUp      int                      `json:"n_up"`
	NDn      int                      `json:"n_dn"`
	Size     int                      `json:"size"`
	NNZ      int                      `json:"nnz"`
	Energies []float64                `json:"energies"`
}

func (a *app) hubbardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hubbard",
		Short: "Diagonalize the Hubbard model on a chain in one sector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			nUp, err := flags.GetInt(upF)
			if err != nil {
				return err
			}
			nDn, err := flags.GetInt(dnF)
			if err != nil {
				return err
			}
			periodic, err := flags.GetBool(periodicF)
			if err != nil {
				return err
			}
			count, err := flags.GetInt(countF)
			if err != nil {
				return err
			}

			m, err := modelFromFlags(flags)
			if err != nil {
				return err
			}

			sector, err := a.sector(nUp, nDn)
			if err != nil {
				return err
			}

			op, err := hamiltonian.Hubbard(sector, m, hamiltonian.Chain(a.basis.NumSites(), periodic))
			if err != nil {
				return err
			}
			vals, err := op.EigenValues()
			if err != nil {
				return err
			}
			if count > 0 && count < len(vals) {
				vals = vals[:count]
			}

			a.logger.WithFillings(sector.Filling()).Info("hubbard sector diagonalized",
				"model", m.String(),
				"size", op.Size,
				"nnz", op.NNZ(),
			)

			res := hubbardResult{Model: m, NUp: nUp, NDn: nDn, Size: op.Size, NNZ: op.NNZ(), Energies: vals}
			rows := make([][]string, len(vals))
			for i, e := range vals {
				rows[i] = []string{strconv.Itoa(i), strconv.FormatFloat(e, 'f', 6, 64)}
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, []string{"k", "energy"}, rows, res)
		},
	}

	flags := cmd.Flags()
	def := hamiltonian.DefaultHubbard()
	flags.Int(upF, 1, "Number of spin-up particles.")
	flags.Int(dnF, 1, "Number of spin-down particles.")
	flags.Float64(uF, def.U, "On-site interaction U.")
	flags.Float64(tF, def.T, "Hopping amplitude t.")
	flags.Float64(epsF, def.Eps, "On-site energy ε.")
	flags.Float64(muF, def.Mu, "Chemical potential μ.")
	flags.Bool(periodicF, true, "Close the chain into a ring.")
	flags.Int(countF, 5, "Number of lowest eigenvalues to print. Zero prints all.")

	return cmd
}

func modelFromFlags(flags *pflag.FlagSet) (hamiltonian.HubbardModel, error) {
	m := hamiltonian.DefaultHubbard()
	for name, dst := range map[string]*float64{uF: &m.U, tF: &m.T, epsF: &m.Eps, muF: &m.Mu} {
		v, err := flags.GetFloat64(name)
		if err != nil {
			return m, err
		}
		*dst = v
	}
	return m, nil
}
