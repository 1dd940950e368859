package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	geminiModel      = "gemini-2.5-flash"
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	maxContentChars  = 10000
)

var (
	geminiAPIKey  string
	geminiBaseURL = "https://generativelanguage.googleapis.com"

	// Model calls are bounded so a slow response degrades into the
	// fallback instead of hanging the request.
	modelClient = &http.Client{Timeout: 30 * time.Second}
	fetchClient = &http.Client{Timeout: 10 * time.Second}
)

// FallbackSubtasks is the canned breakdown returned whenever the model
// cannot produce one. Always exactly 5 entries.
var FallbackSubtasks = []string{
	"Plan details",
	"Gather resources",
	"Execute step 1",
	"Execute step 2",
	"Review",
}

// SummaryResult is the stash summarization output. Tags is an opaque
// comma-separated string.
type SummaryResult struct {
	Summary string `json:"summary"`
	Tags    string `json:"tags"`
}

// ConfigureGemini sets the API key and optionally overrides the service
// base URL (used by tests).
func ConfigureGemini(apiKey, baseURL string) {
	geminiAPIKey = apiKey
	if baseURL != "" {
		geminiBaseURL = baseURL
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func generateContent(prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", geminiBaseURL, geminiModel, geminiAPIKey)
	resp, err := modelClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("gemini API error: status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini API error: empty response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFences removes markdown ``` artifacts the model tends to wrap
// JSON answers in.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// GenerateSubtasks asks the model to break a list title into sub-tasks.
// Always returns exactly 5 entries: model output is truncated to 5 and
// padded from the fallback when short, and any failure returns the
// fallback outright.
func GenerateSubtasks(todoTitle string) []string {
	prompt := fmt.Sprintf(
		"Break down '%s' into exactly 5 actionable sub-tasks. "+
			"Return ONLY a raw JSON array of strings. Example: [\"Step 1\", \"Step 2\"]",
		todoTitle,
	)

	text, err := generateContent(prompt)
	if err != nil {
		fmt.Printf("Gemini error: %v\n", err)
		return FallbackSubtasks
	}

	var subtasks []string
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &subtasks); err != nil {
		fmt.Printf("Gemini parse error: %v\n", err)
		return FallbackSubtasks
	}

	if len(subtasks) > 5 {
		subtasks = subtasks[:5]
	}
	for len(subtasks) < 5 {
		subtasks = append(subtasks, FallbackSubtasks[len(subtasks)])
	}
	return subtasks
}

// FetchURLContent GETs a page with a browser-like user agent, strips
// script and style elements, and returns the visible text truncated to
// 10k characters. Returns false on any failure; timeouts, DNS errors,
// bad statuses, and parse errors are not distinguished.
func FetchURLContent(url string) (string, bool) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := fetchClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", false
	}

	text, err := extractText(resp.Body)
	if err != nil {
		return "", false
	}

	runes := []rune(text)
	if len(runes) > maxContentChars {
		text = string(runes[:maxContentChars])
	}
	return text, true
}

func extractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(trimmed)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return sb.String(), nil
}

// SummarizeContent fetches a URL and asks the model for a short summary
// and tag list. Every failure path collapses into a canned result; the
// caller never sees an error.
func SummarizeContent(url string) SummaryResult {
	content, ok := FetchURLContent(url)
	if !ok {
		return SummaryResult{Summary: "Could not access URL.", Tags: "error"}
	}

	prompt := fmt.Sprintf(
		"Text: %s\n\nTasks: 1. Summary (max 2 sentences). 2. 5 tags.\n"+
			"Return JSON keys: 'summary', 'tags' (comma-separated string).",
		content,
	)

	text, err := generateContent(prompt)
	if err != nil {
		fmt.Printf("Gemini error: %v\n", err)
		return SummaryResult{Summary: "AI Error", Tags: "error"}
	}

	var result SummaryResult
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &result); err != nil {
		fmt.Printf("Gemini parse error: %v\n", err)
		return SummaryResult{Summary: "AI Error", Tags: "error"}
	}
	return result
}
