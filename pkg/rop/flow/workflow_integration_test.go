package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/ib-77/railflow/pkg/rop/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errInvalidURL = errors.New("URL must start with http:// or https://")
	errBlocked    = errors.New("host is blocked")
)

type page struct {
	url   string
	title string
}

func validateURL(url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", errInvalidURL
	}
	return url, nil
}

// mockFetchTitle simulates fetching a title without making HTTP requests
func mockFetchTitle(url string) (page, error) {
	if strings.Contains(url, "---") {
		return page{}, fmt.Errorf("fetch %s: %w", url, errBlocked)
	}
	return page{url: url, title: "Mock Page Title for " + url}, nil
}

func titleLength() *Workflow[string, int] {
	fetch := Then(Create(validateURL), mockFetchTitle)
	fetch = fetch.Else(func(err error) (page, error) {
		if errors.Is(err, errBlocked) {
			return page{title: "blocked"}, nil
		}
		return page{}, err
	})
	return Map(fetch, func(p page) int { return len(p.title) })
}

func TestURLProcessingWorkflow(t *testing.T) {
	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.micros---oft.com",
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	render := Combine(titleLength(), Lift(func(n int) string {
		return fmt.Sprintf("title length: %d", n)
	}))

	results := make([]string, len(urls))
	for i, url := range urls {
		results[i] = Finally(render, url,
			func(s string) string { return s },
			func(err error) string {
				if errors.Is(err, errInvalidURL) {
					return "invalid"
				}
				return err.Error()
			})
	}

	assert.Equal(t, []string{
		"title length: 43",
		"title length: 40",
		"title length: 7",
		"invalid",
		"invalid",
	}, results)
}

func TestURLProcessingWorkflow_ConcurrentRuns(t *testing.T) {
	w := titleLength()

	var wg sync.WaitGroup
	lengths := make([]int, 32)
	errs := make([]error, 32)
	for i := range lengths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			url := fmt.Sprintf("https://host%02d.example", i)
			if i%4 == 0 {
				url = "nope"
			}
			lengths[i], errs[i] = w.Run(url)
		}()
	}
	wg.Wait()

	for i := range lengths {
		if i%4 == 0 {
			assert.ErrorIs(t, errs[i], errInvalidURL)
			continue
		}
		require.NoError(t, errs[i])
		assert.Equal(t, len("Mock Page Title for https://host00.example"), lengths[i])
	}
}

func TestURLProcessingWorkflow_Recorded(t *testing.T) {
	recorder := core.NewRecorder()
	ctx := core.WithRecorder(context.Background(), recorder)

	_, err := titleLength().RunContext(ctx, "https://a---b.org")
	require.NoError(t, err)
	assert.Equal(t, []core.Event{core.EventFailed, core.EventRecovered, core.EventApplied}, recorder.Events())

	recorder.Reset()
	_, err = titleLength().RunContext(ctx, "mailto:x")
	assert.ErrorIs(t, err, errInvalidURL)
	assert.Equal(t, []core.Event{core.EventFailed, core.EventFailed}, recorder.Events())
}
