package cmd

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/spf13/viper"
	"github.com/tebeka/selenium"

	"github.com/ftl/sliderdrive/pkg/cfg"
	"github.com/ftl/sliderdrive/pkg/chrome"
	"github.com/ftl/sliderdrive/pkg/slider"
	"github.com/ftl/sliderdrive/pkg/webdriver"
)

const defaultSeleniumURL = "http://localhost:4444/wd/hub"

// session bundles an executor with the element handle of the slider under
// test and the cleanup for the underlying browser connection.
type session struct {
	executor slider.Executor
	element  slider.Element
	close    func()
}

func openSession(ctx context.Context, configuration cfg.Configuration, selector string) (*session, error) {
	driver := viper.GetString("driver")
	switch driver {
	case "chrome":
		return openChromeSession(ctx, configuration, selector)
	case "webdriver":
		return openWebdriverSession(configuration, selector)
	default:
		return nil, fmt.Errorf("%s is not a valid driver, use chrome or webdriver", driver)
	}
}

func openChromeSession(ctx context.Context, configuration cfg.Configuration, selector string) (*session, error) {
	browserURL := viper.GetString("browser")
	if browserURL == "" {
		browserURL = configuration.BrowserURL
	}

	var allocCtx context.Context
	var cancelAlloc context.CancelFunc
	if browserURL != "" {
		allocCtx, cancelAlloc = chromedp.NewRemoteAllocator(ctx, browserURL)
	} else {
		allocCtx, cancelAlloc = chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	}
	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	closeSession := func() {
		cancelTask()
		cancelAlloc()
	}

	tasks := chromedp.Tasks{}
	if url := viper.GetString("url"); url != "" {
		tasks = append(tasks, chromedp.Navigate(url))
	}
	tasks = append(tasks, chromedp.WaitVisible(selector, chromedp.ByQuery))
	if err := chromedp.Run(taskCtx, tasks); err != nil {
		closeSession()
		return nil, err
	}

	return &session{
		executor: chrome.NewExecutor(taskCtx),
		element:  selector,
		close:    closeSession,
	}, nil
}

func openWebdriverSession(configuration cfg.Configuration, selector string) (*session, error) {
	address := viper.GetString("selenium")
	if address == "" {
		address = configuration.SeleniumURL
	}
	if address == "" {
		address = defaultSeleniumURL
	}

	driver, err := selenium.NewRemote(selenium.Capabilities{"browserName": "chrome"}, address)
	if err != nil {
		return nil, err
	}
	closeSession := func() {
		driver.Quit()
	}

	if url := viper.GetString("url"); url != "" {
		if err := driver.Get(url); err != nil {
			closeSession()
			return nil, err
		}
	}
	element, err := driver.FindElement(selenium.ByCSSSelector, selector)
	if err != nil {
		closeSession()
		return nil, err
	}

	return &session{
		executor: webdriver.NewExecutor(driver),
		element:  element,
		close:    closeSession,
	}, nil
}
