// Command clean_config clears the endpoint override in ~/.pagecraft.yaml so
// the backend falls back to its default URL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/phravins/pagecraft/internal/config"
)

func main() {
	configPath, err := config.Path()
	if err != nil {
		fmt.Printf("Error locating config: %v\n", err)
		os.Exit(1)
	}

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("Nothing to clean: %v\n", err)
		return
	}
	viper.Set("ai_base_url", "")

	if err := viper.WriteConfig(); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully cleared ai_base_url in %s\n", configPath)
}
