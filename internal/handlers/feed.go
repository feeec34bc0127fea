// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"time"
)

// rssFeed is the RSS 2.0 document envelope.
type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
}

// Feed serves the blog's RSS 2.0 feed at /rss.xml.
func (p *Public) Feed(baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := p.articleStore.ListPublished()
		if err != nil {
			slog.Error("rss list articles failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		feed := rssFeed{
			Version: "2.0",
			Channel: rssChannel{
				Title:       "Promptoteka – Blog",
				Link:        baseURL + "/blog",
				Description: "Artykuły o promptach i pracy z AI",
				Language:    "pl",
			},
		}

		for _, a := range articles {
			item := rssItem{
				Title:       a.Title,
				Link:        baseURL + "/blog/" + a.Slug,
				GUID:        baseURL + "/blog/" + a.Slug,
				Description: derefOr(a.Excerpt, ""),
			}
			if a.PublishedAt != nil {
				item.PubDate = a.PublishedAt.Format(time.RFC1123Z)
			}
			feed.Channel.Items = append(feed.Channel.Items, item)
		}

		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write([]byte(xml.Header))
		if err := xml.NewEncoder(w).Encode(feed); err != nil {
			slog.Error("rss encode failed", "error", err)
		}
	}
}
