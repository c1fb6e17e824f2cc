// Command gateway_compare calls the same endpoints on two deployments, one per
// gateway driver, and reports where their answers differ.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

type target struct {
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

var defaultTargets = []target{
	{Path: "/api/v1/navigation", Critical: true},
	{Path: "/api/v1/home/teacher", Critical: true},
	{Path: "/api/v1/home/teacher/export?format=csv"},
}

type comparison struct {
	Target      target
	LeftStatus  int
	RightStatus int
	StatusMatch bool
	BodyMatch   bool
	Error       error
	LeftTime    time.Duration
	RightTime   time.Duration
}

func main() {
	var (
		leftBase    string
		rightBase   string
		token       string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&leftBase, "left", "http://localhost:8080", "base URL of the postgres-driver deployment")
	flag.StringVar(&rightBase, "right", "http://localhost:8081", "base URL of the postgrest-driver deployment")
	flag.StringVar(&token, "token", os.Getenv("COMPARE_TOKEN"), "bearer token sent to both deployments")
	flag.StringVar(&targetsPath, "targets", "", "optional JSON file with a targets array")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets := defaultTargets
	if targetsPath != "" {
		loaded, err := loadTargets(targetsPath)
		if err != nil {
			log.Fatalf("failed to load targets: %v", err)
		}
		targets = loaded
	}

	client := &http.Client{Timeout: timeout}
	var (
		results      []comparison
		breaking     int
		optionalDiff int
	)
	for _, t := range targets {
		res := compareTarget(client, leftBase, rightBase, token, t)
		if res.Error != nil || !res.StatusMatch || !res.BodyMatch {
			if t.Critical {
				breaking++
			} else {
				optionalDiff++
			}
		}
		results = append(results, res)
	}

	printReport(results)
	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optionalDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg struct {
		Targets []target `json:"targets"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func compareTarget(client *http.Client, leftBase, rightBase, token string, tgt target) comparison {
	res := comparison{Target: tgt}

	leftStatus, leftBody, leftTime, err := fetch(client, leftBase, token, tgt.Path)
	if err != nil {
		res.Error = fmt.Errorf("left: %w", err)
		return res
	}
	rightStatus, rightBody, rightTime, err := fetch(client, rightBase, token, tgt.Path)
	if err != nil {
		res.Error = fmt.Errorf("right: %w", err)
		return res
	}

	res.LeftStatus, res.RightStatus = leftStatus, rightStatus
	res.LeftTime, res.RightTime = leftTime, rightTime
	res.StatusMatch = leftStatus == rightStatus
	res.BodyMatch = bodiesEqual(leftBody, rightBody)
	return res
}

func fetch(client *http.Client, base, token, path string) (int, []byte, time.Duration, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequest(http.MethodGet, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, time.Since(start), nil
}

// bodiesEqual compares envelopes by data and error only; meta carries timings.
func bodiesEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}
	if !gjson.ValidBytes(a) || !gjson.ValidBytes(b) {
		return false
	}
	for _, path := range []string{"data", "error.code", "error.message"} {
		if !reflect.DeepEqual(gjson.GetBytes(a, path).Value(), gjson.GetBytes(b, path).Value()) {
			return false
		}
	}
	return true
}

func printReport(results []comparison) {
	fmt.Println("Gateway Compare Report")
	fmt.Println("======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] GET %s\n", status, res.Target.Path)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
			continue
		}
		fmt.Printf("  Left: %d (%s) | Right: %d (%s)\n", res.LeftStatus, res.LeftTime, res.RightStatus, res.RightTime)
		fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
	}
}
