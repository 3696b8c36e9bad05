package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"
)

type creditRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type userResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Credits int64  `json:"credits"`
}

type transactionListResponse struct {
	Transactions []struct {
		Amount int64 `json:"amount"`
	} `json:"transactions"`
}

// testResult contains metrics for a single request
type testResult struct {
	success      bool
	responseTime time.Duration
	err          error
}

// testStats contains aggregated test statistics
type testStats struct {
	mu            sync.Mutex
	total         int
	succeeded     int
	failed        int
	totalTime     time.Duration
	responseTimes []time.Duration
	errorCounts   map[string]int
	perUser       map[string]int
}

// scenario is one credit change sent by a worker
type scenario struct {
	name   string
	amount int64
}

var scenarios = []scenario{
	{"Top up", 10},
	{"Bonus", 3},
	{"OCR page", -1},
	{"OCR batch", -5},
	{"Overdraw", -50},
}

type options struct {
	concurrency int
	requests    int
	accounts    int
	baseURL     string
	delayMs     int
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "credit-load-test",
		Short: "Hammer the credit endpoint and check that balances stay consistent",
		Long: `Creates a few accounts, sends concurrent credit changes to
POST /api/users/:id/credits and then checks every account:

  - the balance is never negative
  - one transaction row exists per accepted request`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 5, "Number of concurrent workers")
	cmd.Flags().IntVarP(&opts.requests, "requests", "n", 200, "Total number of credit requests")
	cmd.Flags().IntVarP(&opts.accounts, "accounts", "a", 3, "Number of accounts to spread load across")
	cmd.Flags().StringVar(&opts.baseURL, "url", "http://localhost:8000", "Base URL of the API")
	cmd.Flags().IntVar(&opts.delayMs, "delay", 0, "Delay between requests per worker in milliseconds")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.concurrency <= 0 || opts.requests <= 0 || opts.accounts <= 0 {
		return fmt.Errorf("concurrency, requests and accounts must be positive")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	runID := time.Now().UnixNano()

	userIDs := make([]string, 0, opts.accounts)
	for i := 0; i < opts.accounts; i++ {
		user, err := createUser(client, opts.baseURL, fmt.Sprintf("load-%d-%d@example.com", runID, i))
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		userIDs = append(userIDs, user.ID)
	}

	fmt.Printf("Load testing %d accounts with %d requests over %d workers\n", len(userIDs), opts.requests, opts.concurrency)

	stats := &testStats{
		total:         opts.requests,
		responseTimes: make([]time.Duration, 0, opts.requests),
		errorCounts:   make(map[string]int),
		perUser:       make(map[string]int),
	}

	jobs := make(chan int, opts.requests)
	for i := 0; i < opts.requests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < opts.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, opts, userIDs, jobs, stats)
		}()
	}
	wg.Wait()
	stats.totalTime = time.Since(start)

	printResults(stats)
	return verify(client, opts.baseURL, userIDs, stats)
}

func worker(client *http.Client, opts options, userIDs []string, jobs <-chan int, stats *testStats) {
	for range jobs {
		if opts.delayMs > 0 {
			time.Sleep(time.Duration(opts.delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]
		sc := scenarios[rand.Intn(len(scenarios))]

		body, _ := json.Marshal(creditRequest{Amount: sc.amount, Description: sc.name})

		begin := time.Now()
		resp, err := client.Post(fmt.Sprintf("%s/api/users/%s/credits", opts.baseURL, userID), "application/json", bytes.NewReader(body))
		result := testResult{responseTime: time.Since(begin), err: err}
		if err == nil {
			result.success = resp.StatusCode == http.StatusOK
			if !result.success {
				result.err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		stats.mu.Lock()
		stats.responseTimes = append(stats.responseTimes, result.responseTime)
		if result.success {
			stats.succeeded++
			stats.perUser[userID]++
		} else {
			stats.failed++
			stats.errorCounts[result.err.Error()]++
		}
		stats.mu.Unlock()
	}
}

func createUser(client *http.Client, baseURL, email string) (*userResponse, error) {
	body, _ := json.Marshal(map[string]string{"email": email})
	resp, err := client.Post(baseURL+"/api/users", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func getJSON(client *http.Client, url string, out any) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP status code %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// verify checks balances and transaction counts after the run
func verify(client *http.Client, baseURL string, userIDs []string, stats *testStats) error {
	fmt.Println("\n----------------- CONSISTENCY -----------------")
	var problems int
	for _, id := range userIDs {
		var user userResponse
		if err := getJSON(client, fmt.Sprintf("%s/api/users/%s", baseURL, id), &user); err != nil {
			return err
		}
		var history transactionListResponse
		if err := getJSON(client, fmt.Sprintf("%s/api/users/%s/transactions?limit=1000", baseURL, id), &history); err != nil {
			return err
		}

		status := "ok"
		if user.Credits < 0 {
			status = "NEGATIVE BALANCE"
			problems++
		}
		if len(history.Transactions) != stats.perUser[id] && stats.perUser[id] <= 1000 {
			status = fmt.Sprintf("expected %d transactions, found %d", stats.perUser[id], len(history.Transactions))
			problems++
		}
		fmt.Printf("%s  credits=%-6d requests=%-5d %s\n", id, user.Credits, stats.perUser[id], status)
	}

	if problems > 0 {
		return fmt.Errorf("%d consistency problems found", problems)
	}
	fmt.Println("All balances consistent")
	return nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *testStats) {
	sorted := append([]time.Duration(nil), stats.responseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.total)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.succeeded, float64(stats.succeeded)/float64(stats.total)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.failed, float64(stats.failed)/float64(stats.total)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.totalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.succeeded)/stats.totalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))
	if len(sorted) > 0 {
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}

	if stats.failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range stats.errorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
