package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotX12/subnetcalc/internal/domain"
	"github.com/dotX12/subnetcalc/internal/logger"
	"github.com/dotX12/subnetcalc/internal/service"
)

var (
	networkAddress string
	prefixLength   int
	showClass      bool
	jsonOutput     bool
	logLevel       string
	version        = "dev" // set at build time via -ldflags
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "subnetcalc",
		Short:   "Калькулятор параметров IPv4-подсети",
		Long:    `Вычисляет маску подсети, широковещательный адрес, диапазон хостов и количество адресов по адресу сети и длине префикса CIDR.`,
		Version:       version,
		RunE:          runCalculate,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&networkAddress, "network-address", "n", "192.168.0.0", "Адрес сети в десятичной записи с точками")
	rootCmd.Flags().IntVarP(&prefixLength, "cidr", "c", 24, "Длина префикса CIDR (8-31)")
	rootCmd.Flags().BoolVar(&showClass, "show-class", false, "Определить устаревший класс сети (A/B/C)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Вывести результат в формате JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	log := logger.New(logLevel)

	calc := service.NewCalculatorService(log, showClass)

	info, err := calc.Compute(networkAddress, prefixLength)
	if err != nil {
		return err
	}

	if jsonOutput {
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printInfo(info)
	return nil
}

func printInfo(info domain.SubnetInfo) {
	rows := []struct {
		name  string
		value string
	}{
		{"Network", info.NetworkAddress},
		{"CIDR", fmt.Sprintf("/%d", info.CIDRNotation)},
		{"Netmask", info.SubnetMask},
		{"Wildcard", info.WildcardMask},
		{"Broadcast", info.BroadcastAddress},
		{"Host range", info.HostRange},
		{"Hosts", fmt.Sprintf("%d", info.TotalHosts)},
		{"Addresses", fmt.Sprintf("%d", info.TotalAddresses)},
	}

	if info.NetworkClass != "" {
		rows = append(rows, struct {
			name  string
			value string
		}{"Class", info.NetworkClass})
	}

	for _, row := range rows {
		fmt.Printf("%-12s %s\n", row.name+":", row.value)
	}
}
