package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent resolution audit records",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx, cfg)
		if err != nil {
			return err
		}
		if st == nil {
			return eris.New("no store configured: set store.driver to sqlite or postgres")
		}
		defer st.Close()

		recs, err := st.Recent(ctx, historyLimit)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal records")
		}
		cmd.Println(string(out))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "max records to show")
	rootCmd.AddCommand(historyCmd)
}
