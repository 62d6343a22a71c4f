// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/service"
)

var parsersCmd = &cobra.Command{
	Use:   "parsers",
	Short: "List the registered parsers",
	Long:  `List every registered parser type with the file extensions it handles.`,
	RunE:  runParsers,
}

func runParsers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := service.New(service.WithLogger(newLogger(cfg)))
	for _, typ := range svc.Parsers() {
		extensions := svc.ParserExtensions(typ)
		cmd.Printf("%-18s %s\n", typ, strings.Join(extensions, ", "))
	}
	return nil
}
