package cmd

import (
	"fmt"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/model"

	"github.com/spf13/cobra"
)

var helpInfoCmd = &cobra.Command{
	Use:   "help-info",
	Short: "Financial aid contact details and resources",
	RunE:  runHelpInfo,
}

func init() {
	rootCmd.AddCommand(helpInfoCmd)
}

func runHelpInfo(_ *cobra.Command, _ []string) error {
	c := model.Advisor

	fmt.Println()
	fmt.Println(cli.RenderTitle("NEED HELP?"))
	fmt.Println()
	fmt.Println(cli.Dim(fmt.Sprintf("Talk to a %s financial aid advisor.", c.Org)))
	fmt.Println()

	const w = 8
	fmt.Println(cli.RenderKV("Email", c.Email, w))
	fmt.Println(cli.RenderKV("Phone", c.PhoneDisplay(), w))
	fmt.Println(cli.RenderKV("Office", c.Office, w))
	fmt.Println(cli.RenderKV("", c.Address, w))
	fmt.Println(cli.RenderKV("Hours", c.Days+", "+c.Hours, w))
	fmt.Println()

	rows := make([][]string, len(model.Resources))
	for i, r := range model.Resources {
		rows[i] = []string{r.Name, r.Note}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Additional Resources",
		Headers: []string{"Resource", "For"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println(cli.Dim(c.MailtoURL() + "  " + c.TelURL()))
	fmt.Println()
	return nil
}
