package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/colordoll/pkg/colorizer"
)

const demoDocument = `{
	"name": "Example",
	"version": 1.0,
	"debug_mode": true,
	"values": [1, 2.5, null, "hello"],
	"config": {
		"host": "localhost",
		"port": 8080,
		"nested_config": {
			"inner_key": "inner_value",
			"inner_list": [true, false, null, 100]
		}
	},
	"status": "ok"
}`

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colorizer.New()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, formatBoldUpper("nested colorization"))
			status := c.Colorize("ERROR", "red", "")
			success := c.Colorize("Success!", "green", "")
			fmt.Fprintln(out, c.Colorize(
				c.Blue("This is "+status+" and "+success+" text."), "", "bg_red"))
			fmt.Fprintln(out, c.Colorize(
				"This is "+c.Colorize("red text on bright black", "red", "bright_black")+
					" inside yellow on bright blue", "yellow", "bright_blue"))

			demoList := []interface{}{
				"item1",
				map[string]interface{}{
					"key":         "value",
					"nested_list": []interface{}{true, false, "nested_string", 5},
				},
				123,
				nil,
				true,
			}

			for _, name := range colorizer.ThemeNames() {
				theme, _ := colorizer.ThemeByName(name)
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatBoldUpper(name+" theme"))
				fmt.Fprintln(out, c.ThemeColorize(demoDocument, theme))
				fmt.Fprintln(out, c.ThemeColorize(demoList, theme))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, formatBoldUpper("themed decorator"))
			answer := c.VibrantTheme()(func() interface{} {
				return map[string]interface{}{"answer": 42}
			})
			fmt.Fprintln(out, answer())
			return nil
		},
	}
}
