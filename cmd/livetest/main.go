// Package main provides a stress testing tool for the live thread feed.
//
// It registers (or logs in) a user, opens a thread, attaches many watchers to
// /threads/:id/live and posts comments over REST while counting the events
// each watcher receives.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// Metrics tracks the test results
type Metrics struct {
	ConnectionsAttempted int64
	ConnectionsSuccess   int64
	ConnectionsFailed    int64
	CommentsPosted       int64
	EventsReceived       int64
	Errors               int64
}

var metrics Metrics

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type client struct {
	host  string
	http  *http.Client
	token string
}

func main() {
	host := flag.String("host", "localhost:5000", "API server host")
	username := flag.String("username", "livetest", "Test user, registered when missing")
	password := flag.String("password", "password123", "Test user password")
	watchers := flag.Int("watchers", 50, "Number of concurrent watchers")
	interval := flag.Duration("interval", time.Second, "Delay between posted comments")
	duration := flag.Duration("duration", 30*time.Second, "Test duration")
	flag.Parse()

	log.Printf("🚀 Starting live feed stress test")
	log.Printf("Target: %s", *host)
	log.Printf("Watchers: %d", *watchers)
	log.Printf("Duration: %v", *duration)

	c := &client{host: *host, http: &http.Client{Timeout: 5 * time.Second}}
	if err := c.login(*username, *password); err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}
	log.Printf("✅ Logged in as %s", *username)

	threadID, err := c.createThread()
	if err != nil {
		log.Fatalf("❌ Thread creation failed: %v", err)
	}
	log.Printf("🧵 Watching thread %s", threadID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *duration)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < *watchers; i++ {
		g.Go(func() error {
			watch(ctx, *host, threadID)
			return nil
		})
		time.Sleep(20 * time.Millisecond) // stagger the handshakes
	}
	g.Go(func() error {
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()
		for n := 1; ; n++ {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := c.postComment(threadID, fmt.Sprintf("komentar uji beban #%d", n)); err != nil {
					atomic.AddInt64(&metrics.Errors, 1)
					continue
				}
				atomic.AddInt64(&metrics.CommentsPosted, 1)
			}
		}
	})

	_ = g.Wait()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Println("⏱️  Test duration reached")
	}
	printMetrics(*watchers)
}

func (c *client) do(method, path string, body any, out any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}
	req, err := http.NewRequest(method, "http://"+c.host+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, err
	}
	if env.Status != "success" {
		return resp.StatusCode, fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, env.Message)
	}
	if out != nil {
		return resp.StatusCode, json.Unmarshal(env.Data, out)
	}
	return resp.StatusCode, nil
}

func (c *client) login(username, password string) error {
	creds := map[string]string{"username": username, "password": password}
	var tokens struct {
		AccessToken string `json:"accessToken"`
	}
	status, err := c.do(http.MethodPost, "/authentications", creds, &tokens)
	if err != nil && status == http.StatusBadRequest {
		register := map[string]string{"username": username, "password": password, "fullname": "Live Test"}
		if _, rerr := c.do(http.MethodPost, "/users", register, nil); rerr != nil {
			return rerr
		}
		_, err = c.do(http.MethodPost, "/authentications", creds, &tokens)
	}
	if err != nil {
		return err
	}
	c.token = tokens.AccessToken
	return nil
}

func (c *client) createThread() (string, error) {
	var data struct {
		AddedThread struct {
			ID string `json:"id"`
		} `json:"addedThread"`
	}
	payload := map[string]string{
		"title": "uji beban live feed",
		"body":  fmt.Sprintf("dibuat %s", time.Now().Format(time.RFC3339)),
	}
	if _, err := c.do(http.MethodPost, "/threads", payload, &data); err != nil {
		return "", err
	}
	return data.AddedThread.ID, nil
}

func (c *client) postComment(threadID, content string) error {
	_, err := c.do(http.MethodPost, "/threads/"+threadID+"/comments", map[string]string{"content": content}, nil)
	return err
}

func watch(ctx context.Context, host, threadID string) {
	atomic.AddInt64(&metrics.ConnectionsAttempted, 1)

	u := url.URL{Scheme: "ws", Host: host, Path: "/threads/" + threadID + "/live"}
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if resp != nil && resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	if err != nil {
		atomic.AddInt64(&metrics.ConnectionsFailed, 1)
		atomic.AddInt64(&metrics.Errors, 1)
		return
	}
	defer func() { _ = conn.Close() }()
	atomic.AddInt64(&metrics.ConnectionsSuccess, 1)

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				atomic.AddInt64(&metrics.Errors, 1)
			}
			return
		}
		var ev struct {
			Type string `json:"type"`
		}
		if json.Unmarshal(msg, &ev) == nil && ev.Type != "error" {
			atomic.AddInt64(&metrics.EventsReceived, 1)
		}
	}
}

func printMetrics(watchers int) {
	posted := atomic.LoadInt64(&metrics.CommentsPosted)
	received := atomic.LoadInt64(&metrics.EventsReceived)

	log.Println("\n📊 Test Results")
	log.Println("===============")
	log.Printf("Connections Attempted: %d", atomic.LoadInt64(&metrics.ConnectionsAttempted))
	log.Printf("Connections Successful: %d", atomic.LoadInt64(&metrics.ConnectionsSuccess))
	log.Printf("Connections Failed: %d", atomic.LoadInt64(&metrics.ConnectionsFailed))
	log.Printf("Comments Posted: %d", posted)
	log.Printf("Events Received: %d (expected up to %d)", received, posted*int64(watchers))
	log.Printf("Total Errors: %d", atomic.LoadInt64(&metrics.Errors))
}
