package main

import (
	"fmt"
	"os"
	"time"

	"github.com/selquery/selq/internal/report"
	"github.com/selquery/selq/pkg/types"
)

func main() {
	// Sample inspection data mirroring testdata/queries
	insp := &types.Inspection{
		Version:   "1.0",
		Timestamp: time.Now(),
		Statements: []types.StatementInfo{
			{
				File:       "customers.sql",
				Line:       5,
				Statement:  "SELECT TOP 10 c.Id, c.Name AS CustomerName\nFROM [crm].dbo.Customers c\nWHERE c.Active = 1\nORDER BY c.Name",
				FirstTable: "Customers",
				Databases:  []string{"crm"},
				Columns: []types.ColumnDescriptor{
					{TableName: "c", Name: "Id"},
					{TableName: "c", Name: "Name", Alias: "CustomerName"},
				},
				Predicates: []types.PredicateDescriptor{
					{Column: "c.Active", Operator: "=", Value: "1"},
				},
				OrderBy: "c.Name",
				Top:     10,
			},
			{
				File:       "customers.sql",
				Line:       11,
				Statement:  "SELECT Id, Email\nFROM Signups\nWHERE CreatedAt >= '2026-01-01'\nORDER BY CreatedAt DESC",
				FirstTable: "Signups",
				Columns: []types.ColumnDescriptor{
					{Name: "Id"},
					{Name: "Email"},
				},
				Predicates: []types.PredicateDescriptor{
					{Column: "CreatedAt", Operator: ">=", Value: "'2026-01-01'"},
				},
				OrderBy: "CreatedAt DESC",
			},
			{
				File:       "reporting/sales.sql",
				Line:       1,
				Statement:  "SELECT o.Id, o.Total, c.Name\nFROM [sales].dbo.Orders o\nINNER JOIN [crm].dbo.Customers c ON c.Id = o.CustomerId\nWHERE o.Total > 100",
				FirstTable: "Orders",
				Databases:  []string{"crm", "sales"},
				Columns: []types.ColumnDescriptor{
					{TableName: "o", Name: "Id"},
					{TableName: "o", Name: "Total"},
					{TableName: "c", Name: "Name"},
				},
				Predicates: []types.PredicateDescriptor{
					{Column: "o.Total", Operator: ">", Value: "100"},
				},
			},
		},
	}

	file, err := os.Create("testdata/html_demo/report.html")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating report file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := report.NewHTMLReporter().Format(insp, file); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("HTML report generated: testdata/html_demo/report.html")
	fmt.Println("Open it in a browser to view the inspection report.")
}
