package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oliveiraclick/criadorLP/internal/editor"
	"github.com/oliveiraclick/criadorLP/internal/export"
	"github.com/oliveiraclick/criadorLP/internal/sections"
)

func exportCMD(load loadFunc) *cobra.Command {
	var (
		id  int64
		out string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Package a saved project as a static site zip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if id <= 0 {
				return errors.New("--id is required")
			}
			ctx := cmd.Context()
			cfg, err := load(ctx)
			if err != nil {
				return err
			}
			store, err := openStore(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := store.Get(ctx, id)
			if err != nil {
				return err
			}
			st, err := editor.Open(p.Data, url.Values{"name": {p.Name}, "industry": {p.Industry}, "style": {p.Style}})
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "project %d: %v; exporting defaults\n", id, err)
			}
			st.Editing = true
			logo, err := store.LoadLogo(ctx)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := sections.Page(st.PageModel(logo)).Render(&buf); err != nil {
				return err
			}
			archive, err := export.New(export.WithOutline(cfg.Export.Outline)).Package(ctx, export.Input{
				Markup:       buf.Bytes(),
				BusinessName: st.Global.BusinessName,
				SEO:          st.Meta(logo),
			})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}
			dst := filepath.Join(out, archive.Filename)
			if err := os.WriteFile(dst, archive.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dst)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "project id")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	return cmd
}
