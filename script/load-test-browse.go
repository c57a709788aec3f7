package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Scenario is one kind of request the load test issues
type Scenario struct {
	Name   string
	Path   func(r *rand.Rand) string
	Authed bool
}

// Result contains metrics for a single request
type Result struct {
	Scenario     string
	ResponseTime time.Duration
	StatusCode   int
	Err          error
}

// Stats aggregates results across workers
type Stats struct {
	mu            sync.Mutex
	total         int
	succeeded     int
	failed        int
	responseTimes []time.Duration
	byScenario    map[string]int
	byError       map[string]int
}

func (s *Stats) add(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byScenario[res.Scenario]++
	s.responseTimes = append(s.responseTimes, res.ResponseTime)
	if res.Err == nil {
		s.succeeded++
		return
	}
	s.failed++
	s.byError[res.Err.Error()]++
}

func (s *Stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.succeeded + s.failed
}

var searchTerms = []string{"", "", "sunset", "portrait", "cat", "mountain", "city"}

func scenarios(imageIDs []string) []Scenario {
	list := []Scenario{
		{Name: "gallery", Path: func(r *rand.Rand) string {
			q := url.Values{}
			q.Set("page", fmt.Sprint(1+r.Intn(3)))
			if term := searchTerms[r.Intn(len(searchTerms))]; term != "" {
				q.Set("query", term)
			}
			return "/api/images?" + q.Encode()
		}},
		{Name: "navigation", Path: func(*rand.Rand) string { return "/api/navigation?path=/" }},
		{Name: "catalog", Path: func(*rand.Rand) string { return "/api/transformations/types" }},
		{Name: "profile", Path: func(*rand.Rand) string { return "/api/me" }, Authed: true},
		{Name: "credits", Path: func(*rand.Rand) string { return "/api/me/credits" }, Authed: true},
	}
	if len(imageIDs) > 0 {
		list = append(list, Scenario{Name: "detail", Path: func(r *rand.Rand) string {
			return "/api/images/" + imageIDs[r.Intn(len(imageIDs))]
		}})
	}
	return list
}

func mintToken(secret, issuer, subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 200, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 50, "Delay between requests per worker in milliseconds")
	imageIDsStr := flag.String("images", "", "Comma-separated image ids to fetch detail pages for")
	jwtSecret := flag.String("secret", "", "JWT secret; authenticated scenarios are skipped when empty")
	issuer := flag.String("issuer", "", "JWT issuer")
	identities := flag.String("identities", "", "Comma-separated identity ids to sign tokens for")
	flag.Parse()

	var imageIDs []string
	for _, id := range strings.Split(*imageIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			imageIDs = append(imageIDs, id)
		}
	}

	var tokens []string
	if *jwtSecret != "" {
		for _, subject := range strings.Split(*identities, ",") {
			if subject = strings.TrimSpace(subject); subject == "" {
				continue
			}
			token, err := mintToken(*jwtSecret, *issuer, subject)
			if err != nil {
				fmt.Printf("Failed to sign token for %s: %v\n", subject, err)
				return
			}
			tokens = append(tokens, token)
		}
	}

	var active []Scenario
	for _, sc := range scenarios(imageIDs) {
		if sc.Authed && len(tokens) == 0 {
			continue
		}
		active = append(active, sc)
	}

	fmt.Printf("Load testing %s with %d scenarios\n", *baseURL, len(active))
	fmt.Printf("Concurrency: %d, requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	stats := &Stats{
		total:         *totalRequests,
		responseTimes: make([]time.Duration, 0, *totalRequests),
		byScenario:    make(map[string]int),
		byError:       make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fmt.Printf("Progress: %d/%d\n", stats.completed(), stats.total)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, time.Duration(*delayMs)*time.Millisecond, active, tokens, jobs, stats)
		}(i)
	}
	wg.Wait()
	close(done)

	printResults(stats, time.Since(start))
}

func worker(id int, baseURL string, delay time.Duration, active []Scenario, tokens []string, jobs <-chan int, stats *Stats) {
	client := &http.Client{Timeout: 10 * time.Second}
	r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))

	for range jobs {
		if delay > 0 {
			time.Sleep(delay)
		}

		sc := active[r.Intn(len(active))]
		req, err := http.NewRequest(http.MethodGet, baseURL+sc.Path(r), nil)
		if err != nil {
			stats.add(Result{Scenario: sc.Name, Err: err})
			continue
		}
		if sc.Authed {
			req.Header.Set("Authorization", "Bearer "+tokens[r.Intn(len(tokens))])
		}

		began := time.Now()
		resp, err := client.Do(req)
		res := Result{Scenario: sc.Name, ResponseTime: time.Since(began), Err: err}
		if err == nil {
			res.StatusCode = resp.StatusCode
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode >= 300 {
				res.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
		}
		stats.add(res)
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func printResults(stats *Stats, elapsed time.Duration) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	sorted := make([]time.Duration, len(stats.responseTimes))
	copy(sorted, stats.responseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Requests:   %d (ok %d, failed %d)\n", stats.total, stats.succeeded, stats.failed)
	fmt.Printf("Elapsed:    %.2fs\n", elapsed.Seconds())
	fmt.Printf("Throughput: %.2f req/s\n", float64(stats.succeeded)/elapsed.Seconds())

	fmt.Println("\n-------------- RESPONSE TIMES --------------")
	fmt.Printf("Average: %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Min:     %v\n", sorted[0])
		fmt.Printf("Max:     %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50:     %v\n", percentile(sorted, 50))
	fmt.Printf("P90:     %v\n", percentile(sorted, 90))
	fmt.Printf("P99:     %v\n", percentile(sorted, 99))

	fmt.Println("\n---------------- SCENARIOS -----------------")
	for name, count := range stats.byScenario {
		fmt.Printf("%-12s %d\n", name, count)
	}

	if stats.failed > 0 {
		fmt.Println("\n------------------ ERRORS ------------------")
		for msg, count := range stats.byError {
			fmt.Printf("%-40s %d\n", msg, count)
		}
	}
}
