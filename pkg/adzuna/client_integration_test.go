package adzuna

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestSearchIntegration(t *testing.T) {
	appID := os.Getenv("ADZUNA_APP_ID")
	appKey := os.Getenv("ADZUNA_APP_KEY")

	if appID == "" || appKey == "" {
		t.Skip("ADZUNA_APP_ID and ADZUNA_APP_KEY must be set to run this test")
	}

	client := NewClient(Config{AppID: appID, AppKey: appKey})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.Search(ctx, Query{What: "software engineer", Where: "Bangalore", Country: "in"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(resp.Results) == 0 {
		t.Log("Adzuna search returned zero jobs; check query or credentials")
		return
	}

	for i, posting := range resp.Results {
		if i >= 5 {
			break
		}
		t.Logf("Result %d: %s @ %s (%s)", i+1, posting.Title, posting.Company.Value, posting.Location.Display())
	}
	t.Logf("Adzuna search returned %d jobs", len(resp.Results))
}
