package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "juscalc-cli",
		Short: "JusCalc CLI tool",
		Long:  `A command line interface for the JusCalc monetary correction API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the JusCalc API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		correcaoCmd(),
		jurosCmd(),
		liquidacaoCmd(),
		fgtsCmd(),
		indicesCmd(),
		consultaCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func correcaoCmd() *cobra.Command {
	var (
		principal string
		start     string
		end       string
		index     string
		juros     bool
		modo      string
		taxa      string
	)

	cmd := &cobra.Command{
		Use:   "correcao",
		Short: "Run a monetary correction calculation",
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"principal":        principal,
				"start_date":       start,
				"end_date":         end,
				"index":            index,
				"include_interest": juros,
			}
			if modo != "" {
				payload["interest_mode"] = modo
			}
			if taxa != "" {
				payload["monthly_rate"] = taxa
			}
			postJSON("/api/v1/calculations/correction", payload)
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "Principal amount (e.g. 1000.00)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&index, "index", "INPC", "Correction index (INPC, IPCA-E, IGP-M, TR, SELIC)")
	cmd.Flags().BoolVar(&juros, "juros", false, "Include late-payment interest")
	cmd.Flags().StringVar(&modo, "modo", "", "Interest mode (simple, compound)")
	cmd.Flags().StringVar(&taxa, "taxa", "", "Monthly interest rate as a fraction (e.g. 0.01)")

	return cmd
}

func jurosCmd() *cobra.Command {
	var (
		principal string
		start     string
		end       string
		modo      string
		taxa      string
		corrigir  bool
		index     string
	)

	cmd := &cobra.Command{
		Use:   "juros",
		Short: "Run a late-payment interest calculation",
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"principal":       principal,
				"start_date":      start,
				"end_date":        end,
				"with_correction": corrigir,
			}
			if modo != "" {
				payload["interest_mode"] = modo
			}
			if taxa != "" {
				payload["monthly_rate"] = taxa
			}
			if corrigir {
				payload["index"] = index
			}
			postJSON("/api/v1/calculations/late-payment", payload)
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "Principal amount")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&modo, "modo", "simple", "Interest mode (simple, compound)")
	cmd.Flags().StringVar(&taxa, "taxa", "", "Monthly interest rate as a fraction")
	cmd.Flags().BoolVar(&corrigir, "corrigir", false, "Apply monetary correction before interest")
	cmd.Flags().StringVar(&index, "index", "INPC", "Correction index when --corrigir is set")

	return cmd
}

func liquidacaoCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "liquidacao",
		Short: "Run a settlement calculation from a JSON request file",
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(file)
			if err != nil {
				fmt.Printf("Error reading request file: %v\n", err)
				os.Exit(1)
			}
			postRaw("/api/v1/settlements", data)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the settlement request JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func fgtsCmd() *cobra.Command {
	var (
		salario string
		start   string
		end     string
	)

	cmd := &cobra.Command{
		Use:   "fgts",
		Short: "Project an FGTS balance",
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/calculations/fgts", map[string]any{
				"monthly_salary": salario,
				"start_date":     start,
				"end_date":       end,
			})
		},
	}

	cmd.Flags().StringVar(&salario, "salario", "", "Monthly salary")
	cmd.Flags().StringVar(&start, "start", "", "First deposit month (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last deposit month (YYYY-MM-DD)")

	return cmd
}

func indicesCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "indices [code]",
		Short: "Show the monthly series for an index",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON(fmt.Sprintf("/api/v1/indexes/%s/rates?from=%s&to=%s", args[0], from, to))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")

	return cmd
}

func consultaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consulta [id]",
		Short: "Fetch a stored calculation by ID, or list recent ones",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				getJSON("/api/v1/calculations/" + args[0])
				return
			}
			getJSON("/api/v1/calculations/")
		},
	}
}

func postJSON(path string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}
	postRaw(path, data)
}

func postRaw(path string, body []byte) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
		return
	}

	printJSON(decoded)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
