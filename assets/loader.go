// Package assets loads images in the background and hands them to callers
// on the game goroutine.
package assets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"net/http"
	"os"
	"strings"
	"sync"
)

// ErrUnsupportedSource is returned for sources the loader cannot read.
var ErrUnsupportedSource = errors.New("unsupported image source")

// request is a caller waiting for an image.
type request struct {
	onLoad  func(image.Image)
	onError func(error)
}

// completion is a finished load waiting to be dispatched.
type completion struct {
	req request
	img image.Image
	err error
}

// Loader fetches and decodes images on background goroutines and caches
// them by source. Callbacks only run from Dispatch.
type Loader struct {
	// UserAgent is sent with HTTP requests.
	UserAgent string

	client *http.Client

	cache   map[string]image.Image
	cacheMu sync.RWMutex

	fetching   map[string][]request
	fetchingMu sync.Mutex

	done   []completion
	doneMu sync.Mutex

	wg sync.WaitGroup
}

// NewLoader creates a loader with an empty cache.
func NewLoader() *Loader {
	return &Loader{
		UserAgent: "frameloop 1.0",
		client:    &http.Client{},
		cache:     make(map[string]image.Image),
		fetching:  make(map[string][]request),
	}
}

// Load requests the image at src, which may be an http(s) URL, a base64
// data URI or a file path. Exactly one of onLoad or onError runs during a
// later Dispatch; either may be nil.
func (l *Loader) Load(src string, onLoad func(image.Image), onError func(error)) {
	req := request{onLoad: onLoad, onError: onError}

	l.cacheMu.RLock()
	img, found := l.cache[src]
	l.cacheMu.RUnlock()
	if found {
		l.complete(completion{req: req, img: img})
		return
	}

	l.fetchingMu.Lock()
	defer l.fetchingMu.Unlock()
	if waiting, isFetching := l.fetching[src]; isFetching {
		l.fetching[src] = append(waiting, req)
		return
	}
	l.fetching[src] = []request{req}
	l.wg.Add(1)
	go l.fetchAndCache(src)
}

// fetchAndCache loads a single source and queues its waiters.
func (l *Loader) fetchAndCache(src string) {
	defer l.wg.Done()

	img, err := l.fetch(src)
	if err == nil {
		l.cacheMu.Lock()
		l.cache[src] = img
		l.cacheMu.Unlock()
	}

	l.fetchingMu.Lock()
	waiting := l.fetching[src]
	delete(l.fetching, src)
	l.fetchingMu.Unlock()

	for _, req := range waiting {
		l.complete(completion{req: req, img: img, err: err})
	}
}

func (l *Loader) complete(c completion) {
	l.doneMu.Lock()
	l.done = append(l.done, c)
	l.doneMu.Unlock()
}

// Dispatch runs the callbacks of all finished loads and returns how many
// ran.
func (l *Loader) Dispatch() int {
	l.doneMu.Lock()
	done := l.done
	l.done = nil
	l.doneMu.Unlock()

	for _, c := range done {
		if c.err != nil {
			if c.req.onError != nil {
				c.req.onError(c.err)
			}
			continue
		}
		if c.req.onLoad != nil {
			c.req.onLoad(c.img)
		}
	}
	return len(done)
}

// Wait blocks until no fetch is in flight.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Cached reports whether src has been loaded successfully.
func (l *Loader) Cached(src string) bool {
	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()
	_, ok := l.cache[src]
	return ok
}

func (l *Loader) fetch(src string) (image.Image, error) {
	switch {
	case strings.HasPrefix(src, "data:"):
		return DecodeDataURI(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return l.fetchHTTP(src)
	case src == "":
		return nil, fmt.Errorf("%w: empty source", ErrUnsupportedSource)
	default:
		return decodeFile(src)
	}
}

func (l *Loader) fetchHTTP(url string) (image.Image, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s failed: %w", url, err)
	}
	req.Header.Set("User-Agent", l.UserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image %s: %s", url, resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s failed: %w", url, err)
	}
	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s failed: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s failed: %w", path, err)
	}
	return img, nil
}

// DecodeDataURI decodes a base64 data URI such as
// "data:image/png;base64,iVBORw0...".
func DecodeDataURI(uri string) (image.Image, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: not a data URI", ErrUnsupportedSource)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: data URI has no payload", ErrUnsupportedSource)
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("%w: data URI is not base64 encoded", ErrUnsupportedSource)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding data URI payload failed: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding data URI image failed: %w", err)
	}
	return img, nil
}
