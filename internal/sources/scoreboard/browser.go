package scoreboard

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// renderPage fetches the scoreboard through headless Chrome. The site's
// block page rejects plain HTTP clients but serves a full browser, so this
// is the fallback path when the plain client gets a 403.
func renderPage(ctx context.Context, url string, timeout time.Duration, userAgent string) (string, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var page string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("#"+liveScoresID, chromedp.ByID),
		chromedp.OuterHTML("html", &page),
	)
	if err != nil {
		return "", fmt.Errorf("scoreboard: headless render of %s: %w", url, err)
	}
	return page, nil
}
