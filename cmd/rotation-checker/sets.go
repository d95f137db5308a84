package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List known set codes and their regulation marks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table, err := buildTable(cfg)
		if err != nil {
			return err
		}

		codes := table.SetCodes()
		sort.Strings(codes)

		bold := color.New(color.Bold)
		_, _ = bold.Printf("%-6s %s\n", "SET", "MARK")
		for _, code := range codes {
			mark := table.Mark(code)
			line := fmt.Sprintf("%-6s %s", code, mark)
			switch {
			case mark == table.NextMark():
				color.Yellow("%s  (rotating next)", line)
			case mark < table.NextMark():
				color.Red(line)
			default:
				color.Green(line)
			}
		}
		return nil
	},
}
