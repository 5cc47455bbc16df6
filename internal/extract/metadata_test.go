package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParsePageMeta_Full(t *testing.T) {
	page := `<html><head>
		<title> Deep Learning Survey </title>
		<meta name="author" content="Jane Doe">
		<meta name="description" content="A survey of deep learning methods.">
		<meta name="keywords" content="deep learning, survey">
		<meta property="article:published_time" content="2023-06-01">
	</head><body><p>body</p></body></html>`

	meta := ParsePageMeta(page)
	if meta == nil {
		t.Fatal("expected metadata, got nil")
	}
	if meta.Title != "Deep Learning Survey" {
		t.Errorf("title: got %q", meta.Title)
	}
	if meta.Author != "Jane Doe" {
		t.Errorf("author: got %q", meta.Author)
	}
	if meta.Description != "A survey of deep learning methods." {
		t.Errorf("description: got %q", meta.Description)
	}
	if meta.Keywords != "deep learning, survey" {
		t.Errorf("keywords: got %q", meta.Keywords)
	}
	if meta.Published != "2023-06-01" {
		t.Errorf("published: got %q", meta.Published)
	}
}

func TestParsePageMeta_OpenGraphDescription(t *testing.T) {
	page := `<html><head><meta property="og:description" content="OG text"></head></html>`

	meta := ParsePageMeta(page)
	if meta == nil || meta.Description != "OG text" {
		t.Errorf("expected og:description to be used, got %+v", meta)
	}
}

func TestParsePageMeta_NothingRecognized(t *testing.T) {
	if meta := ParsePageMeta(`<html><body><p>plain</p></body></html>`); meta != nil {
		t.Errorf("expected nil for metadata-free page, got %+v", meta)
	}
}

func TestMetadataFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `<html><head><title>Fetched Page</title></head></html>`)
	}))
	defer server.Close()

	fetcher := NewMetadataFetcher(5*time.Second, "scrutiny-test/1.0", 1<<20, "", "", "", false)
	meta, err := fetcher.Fetch(context.Background(), server.URL+"/article")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if meta == nil || meta.Title != "Fetched Page" {
		t.Errorf("expected fetched title, got %+v", meta)
	}
}

func TestMetadataFetcher_RobotsDisallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
			return
		}
		fmt.Fprint(w, `<html><head><title>Secret</title></head></html>`)
	}))
	defer server.Close()

	fetcher := NewMetadataFetcher(5*time.Second, "scrutiny-test/1.0", 1<<20, "", "", "", false)
	meta, err := fetcher.Fetch(context.Background(), server.URL+"/private/page")
	if err != nil {
		t.Fatalf("expected silent skip, got error %v", err)
	}
	if meta != nil {
		t.Errorf("expected nil metadata for disallowed path, got %+v", meta)
	}
}
