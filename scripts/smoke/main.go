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
	"strings"
	"time"
)

type step struct {
	Name       string
	Method     string
	Path       string
	Body       string
	WantStatus []int
}

type result struct {
	Step     step
	Status   int
	Duration time.Duration
	Error    error
	Pass     bool
}

// End-to-end smoke pass against a running workspace API: drops a teacher on
// a slot, double-books to provoke a conflict, undoes both, then checks the
// export surface. Run it against a disposable workspace id only.
func main() {
	var (
		base        string
		workspaceID string
		teacherID   string
		timeout     time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&workspaceID, "workspace", "smoke-test", "Workspace id to exercise")
	flag.StringVar(&teacherID, "teacher", "", "Roster teacher id to place")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	if teacherID == "" {
		log.Fatal("a -teacher id is required")
	}

	prefix := "/api/v1/workspaces/" + workspaceID
	assignBody := fmt.Sprintf(`{"teacher_id":%q,"day":"MONDAY","period":1}`, teacherID)
	steps := []step{
		{Name: "health", Method: http.MethodGet, Path: "/health", WantStatus: []int{http.StatusOK}},
		{Name: "ready", Method: http.MethodGet, Path: "/ready", WantStatus: []int{http.StatusOK}},
		{Name: "state", Method: http.MethodGet, Path: prefix, WantStatus: []int{http.StatusOK}},
		{Name: "assign", Method: http.MethodPost, Path: prefix + "/assignments", Body: assignBody, WantStatus: []int{http.StatusCreated, http.StatusOK}},
		{Name: "assign again rejected", Method: http.MethodPost, Path: prefix + "/assignments", Body: assignBody, WantStatus: []int{http.StatusConflict, http.StatusUnprocessableEntity}},
		{Name: "undo", Method: http.MethodPost, Path: prefix + "/undo", WantStatus: []int{http.StatusOK}},
		{Name: "undo empty", Method: http.MethodPost, Path: prefix + "/undo", WantStatus: []int{http.StatusOK}},
		{Name: "export csv", Method: http.MethodGet, Path: prefix + "/export/csv", WantStatus: []int{http.StatusOK}},
		{Name: "export pdf", Method: http.MethodGet, Path: prefix + "/export/pdf", WantStatus: []int{http.StatusOK}},
		{Name: "metrics", Method: http.MethodGet, Path: "/metrics", WantStatus: []int{http.StatusOK}},
	}

	client := &http.Client{Timeout: timeout}
	var failed int
	results := make([]result, 0, len(steps))
	for _, s := range steps {
		res := runStep(client, base, s)
		if !res.Pass {
			failed++
		}
		results = append(results, res)
	}

	printReport(results)
	fmt.Printf("Failed steps: %d of %d\n", failed, len(steps))
	if failed > 0 {
		os.Exit(1)
	}
}

func runStep(client *http.Client, base string, s step) result {
	res := result{Step: s}

	url := strings.TrimRight(base, "/") + s.Path
	var body io.Reader
	if s.Body != "" {
		body = bytes.NewReader([]byte(s.Body))
	}
	req, err := http.NewRequest(s.Method, url, body)
	if err != nil {
		res.Error = err
		return res
	}
	if s.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err
		return res
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Error = fmt.Errorf("read body: %w", err)
		return res
	}
	res.Status = resp.StatusCode
	for _, want := range s.WantStatus {
		if res.Status == want {
			res.Pass = true
			break
		}
	}
	if !res.Pass {
		res.Error = fmt.Errorf("unexpected status %d: %s", res.Status, summarize(raw))
	}
	return res
}

func summarize(raw []byte) string {
	var envelope struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		return fmt.Sprintf("%s: %s", envelope.Error.Code, envelope.Error.Message)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 120 {
		trimmed = trimmed[:120]
	}
	return string(trimmed)
}

func printReport(results []result) {
	fmt.Println("Workspace Smoke Report")
	fmt.Println("======================")
	for _, res := range results {
		status := "PASS"
		if !res.Pass {
			status = "FAIL"
		}
		fmt.Printf("[%s] %s %s %s (%s)\n", status, res.Step.Name, res.Step.Method, res.Step.Path, res.Duration)
		if res.Error != nil {
			fmt.Printf("  %v\n", res.Error)
		}
	}
}
