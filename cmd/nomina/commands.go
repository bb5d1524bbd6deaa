package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"oficina/internal/payroll"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type employeesFile struct {
	Employees []payroll.EmployeeForm `yaml:"employees"`
}

// loadEmployees reads and validates every form in the file. The first invalid
// form aborts the load, so a partial payroll is never exported.
func loadEmployees(path string) (*payroll.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file employeesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	list := payroll.NewList()
	for i, form := range file.Employees {
		e, err := form.Parse()
		if err != nil {
			return nil, fmt.Errorf("employee #%d: %w", i+1, err)
		}
		list.Add(e)
	}
	return list, nil
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write Nómina.txt (and optionally Nómina.xlsx) to a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			dir, _ := cmd.Flags().GetString("dir")
			withXLSX, _ := cmd.Flags().GetBool("xlsx")

			list, err := loadEmployees(input)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}

			employees := list.All()
			path, err := payroll.Export(dir, employees)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if withXLSX {
				xlsxPath, err := payroll.ExportXLSX(dir, employees)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), xlsxPath)
			}
			return nil
		},
	}

	cmd.Flags().StringP("dir", "d", ".", "Output directory")
	cmd.Flags().Bool("xlsx", false, "Also write the spreadsheet")

	return cmd
}

func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the payroll table with its total",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")

			list, err := loadEmployees(input)
			if err != nil {
				return err
			}

			table := list.Table()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "NOMBRE\tAPELLIDOS\tSUELDO\t")
			for _, r := range table.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t\n", r.Name, r.Surname, r.Pay)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total nómina: $%s\n", table.Total)
			return nil
		},
	}
}
