// Package media finds a picture and a how-to video for a crop.
package media

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	lru "github.com/hashicorp/golang-lru/v2"

	"smartcrop/pkg/logging"
	"smartcrop/pkg/upstream"
)

const (
	SourceMapping   = "mapping"
	SourceUnsplash  = "unsplash"
	SourceWikipedia = "wikipedia"
	SourceDefault   = "default"
	SourceCurated   = "curated"
	SourceYouTube   = "youtube"

	DefaultImage = "https://via.placeholder.com/160?text=Crop"
)

var cropImages = map[string]string{
	"rice":      "https://eos.com/wp-content/uploads/2023/04/rice-field.jpg",
	"maize":     "https://cdn.britannica.com/36/167236-050-BF90337E/Ears-corn.jpg",
	"sugarcane": "https://st.depositphotos.com/1397202/1955/i/450/depositphotos_19558177-Close-up-of-sugarcane-plant.jpg",
	"cotton":    "https://media.sciencephoto.com/c0/36/29/70/c0362970-800px-wm.jpg",
	"soybean":   "https://www.aces.edu/wp-content/uploads/2022/05/Figure-illustrative.jpg",
	"cabbage":   "https://solvi.ag/blog/static/9b5e311fc7fd7ef12efe46a406436cbf/d0b9c/cabbage_yield_cover.jpg",
}

type Image struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

type Video struct {
	Title    string `json:"title"`
	Channel  string `json:"channel"`
	WatchURL string `json:"watch_url"`
	EmbedURL string `json:"embed_url"`
	Source   string `json:"source"`
}

type Media struct {
	Crop  string `json:"crop"`
	Image Image  `json:"image"`
	Video *Video `json:"video,omitempty"`
}

type Options struct {
	UnsplashURL  string
	UnsplashKey  string
	WikipediaURL string
	YouTubeURL   string
	YouTubeKey   string
	// VideoLinks maps lower-case crop names to curated YouTube links.
	VideoLinks map[string]string
}

type Service struct {
	unsplash  *upstream.Client
	wikipedia *upstream.Client
	youtube   *upstream.Client
	opt       Options
	cache     *lru.Cache[string, Media]
}

func NewService(unsplash, wikipedia, youtube *upstream.Client, opt Options) *Service {
	if opt.UnsplashURL == "" {
		opt.UnsplashURL = "https://api.unsplash.com"
	}
	if opt.WikipediaURL == "" {
		opt.WikipediaURL = "https://en.wikipedia.org"
	}
	if opt.YouTubeURL == "" {
		opt.YouTubeURL = "https://www.googleapis.com/youtube/v3"
	}
	opt.UnsplashURL = strings.TrimRight(opt.UnsplashURL, "/")
	opt.WikipediaURL = strings.TrimRight(opt.WikipediaURL, "/")
	opt.YouTubeURL = strings.TrimRight(opt.YouTubeURL, "/")
	cache, _ := lru.New[string, Media](256)
	return &Service{unsplash: unsplash, wikipedia: wikipedia, youtube: youtube, opt: opt, cache: cache}
}

// Lookup never fails: every source that errors is skipped and the
// placeholder image is the last resort.
func (s *Service) Lookup(ctx context.Context, crop string) Media {
	key := strings.ToLower(strings.TrimSpace(crop))
	if m, ok := s.cache.Get(key); ok {
		return m
	}
	m := Media{Crop: crop, Image: s.image(ctx, crop, key), Video: s.video(ctx, crop, key)}
	if ctx.Err() == nil {
		s.cache.Add(key, m)
	}
	return m
}

func (s *Service) image(ctx context.Context, crop, key string) Image {
	if u, ok := cropImages[key]; ok {
		return Image{URL: u, Source: SourceMapping}
	}
	if s.opt.UnsplashKey != "" {
		for _, q := range []string{crop + " crop field", crop + " plant", crop} {
			u, err := s.unsplashSearch(ctx, q)
			if err != nil {
				logging.Debug().Err(err).Str("query", q).Msg("[media] unsplash")
				break
			}
			if u != "" {
				return Image{URL: u, Source: SourceUnsplash}
			}
		}
	}
	if u, err := s.wikipediaImage(ctx, crop); err == nil && u != "" {
		return Image{URL: u, Source: SourceWikipedia}
	} else if err != nil {
		logging.Debug().Err(err).Str("crop", crop).Msg("[media] wikipedia")
	}
	return Image{URL: DefaultImage, Source: SourceDefault}
}

func (s *Service) unsplashSearch(ctx context.Context, query string) (string, error) {
	var out struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	q := url.Values{"query": {query}, "per_page": {"1"}, "orientation": {"landscape"}}
	h := map[string]string{"Authorization": "Client-ID " + s.opt.UnsplashKey}
	if err := s.unsplash.GetJSON(ctx, s.opt.UnsplashURL+"/search/photos", q, h, &out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", nil
	}
	return out.Results[0].URLs.Regular, nil
}

// wikipediaImage reads the og:image of the crop's article.
func (s *Service) wikipediaImage(ctx context.Context, crop string) (string, error) {
	title := strings.ReplaceAll(strings.TrimSpace(crop), " ", "_")
	b, err := s.wikipedia.Get(ctx, s.opt.WikipediaURL+"/wiki/"+url.PathEscape(title), nil, nil)
	if err != nil {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("parse article: %w", err)
	}
	u, _ := doc.Find(`meta[property="og:image"]`).First().Attr("content")
	u = strings.TrimSpace(u)
	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}
	return u, nil
}

func (s *Service) video(ctx context.Context, crop, key string) *Video {
	if link, ok := s.opt.VideoLinks[key]; ok && link != "" {
		return &Video{
			Title:    "How to cultivate " + crop,
			Channel:  "Recommended",
			WatchURL: link,
			EmbedURL: EmbedURL(link),
			Source:   SourceCurated,
		}
	}
	if s.opt.YouTubeKey == "" {
		return nil
	}
	var out struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title        string `json:"title"`
				ChannelTitle string `json:"channelTitle"`
			} `json:"snippet"`
		} `json:"items"`
	}
	q := url.Values{
		"part":       {"snippet"},
		"q":          {"how to cultivate " + crop + " farming"},
		"type":       {"video"},
		"maxResults": {"1"},
		"key":        {s.opt.YouTubeKey},
	}
	if err := s.youtube.GetJSON(ctx, s.opt.YouTubeURL+"/search", q, nil, &out); err != nil {
		logging.Debug().Err(err).Str("crop", crop).Msg("[media] youtube")
		return nil
	}
	if len(out.Items) == 0 || out.Items[0].ID.VideoID == "" {
		return nil
	}
	it := out.Items[0]
	return &Video{
		Title:    it.Snippet.Title,
		Channel:  it.Snippet.ChannelTitle,
		WatchURL: "https://www.youtube.com/watch?v=" + it.ID.VideoID,
		EmbedURL: "https://www.youtube.com/embed/" + it.ID.VideoID,
		Source:   SourceYouTube,
	}
}

// EmbedURL turns a youtu.be or watch?v= link into its embeddable form.
func EmbedURL(link string) string {
	link = strings.Replace(link, "youtu.be/", "www.youtube.com/embed/", 1)
	return strings.Replace(link, "watch?v=", "embed/", 1)
}
