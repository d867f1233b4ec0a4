package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobq/jobq/store"
)

var configGetDefault string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Runtime configuration for workers and defaults",
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a config key to a value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}
		if err := store.NewConfigStore(db).SetConfig(context.Background(), args[0], args[1]); err != nil {
			fatalf("config set %s: %v", args[0], err)
		}
		fmt.Printf("config %q set to %q\n", args[0], args[1])
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a config key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}
		v, err := store.NewConfigStore(db).GetConfig(context.Background(), args[0], configGetDefault)
		if err != nil {
			fatalf("config get %s: %v", args[0], err)
		}
		fmt.Printf("%s=%s\n", args[0], v)
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config keys",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}
		all, err := store.NewConfigStore(db).List(context.Background())
		if err != nil {
			fatalf("config list: %v", err)
		}
		if len(all) == 0 {
			fmt.Println("no config keys set")
			return
		}
		for k, v := range all {
			fmt.Printf("%s=%s\n", k, v)
		}
	},
}

func init() {
	configGetCmd.Flags().StringVar(&configGetDefault, "default", "", "fallback value if the key is unset")
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
}
