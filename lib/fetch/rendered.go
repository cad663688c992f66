package fetch

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

func (f RenderedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()
	runCtx, cancelRun := context.WithTimeout(browserCtx, renderedFetchTimeout)
	defer cancelRun()

	actions := []chromedp.Action{chromedp.Navigate(url)}
	if f.WaitSelector != "" {
		actions = append(actions, chromedp.WaitReady(f.WaitSelector, chromedp.ByQuery))
	}
	var html string
	actions = append(actions, chromedp.OuterHTML("html", &html, chromedp.ByQuery))

	err := chromedp.Run(runCtx, actions...)
	if err != nil {
		return "", fmt.Errorf("rendered fetch of %s: %w", url, err)
	}
	return html, nil
}
