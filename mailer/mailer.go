// Package mailer sends the newsletter over SMTP in throttled batches.
package mailer

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/wearsaintpaul/admin-backend-go/database"
	"github.com/wearsaintpaul/admin-backend-go/models"
)

const (
	defaultBatchSize   = 20
	defaultConcurrency = 5
	defaultBatchDelay  = time.Second
)

type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Newsletter struct {
	Subject string
	HTML    string
	Plain   string
}

// Result is the outcome of one recipient's send attempt.
type Result struct {
	Email string `json:"email"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Mailer splits recipients into batches and sends each batch through a fixed
// pool of workers, one SMTP connection per worker, with a delay between
// batches so the provider does not throttle the run. Every attempt is logged
// to the mailLogs collection.
type Mailer struct {
	dial  func() (gomail.SendCloser, error)
	from  string
	store database.RecordStore

	BatchSize   int
	Concurrency int
	BatchDelay  time.Duration
}

func New(opts Options, store database.RecordStore) *Mailer {
	d := gomail.NewDialer(opts.Host, opts.Port, opts.Username, opts.Password)
	return &Mailer{
		dial:        d.Dial,
		from:        opts.From,
		store:       store,
		BatchSize:   defaultBatchSize,
		Concurrency: defaultConcurrency,
		BatchDelay:  defaultBatchDelay,
	}
}

// Send delivers the newsletter to every recipient and returns one Result per
// recipient. A recipient failing does not stop the run; the returned error is
// non-nil only when the transport cannot be reached at all or the context is
// cancelled between batches.
func (m *Mailer) Send(ctx context.Context, n Newsletter, recipients []string) ([]Result, error) {
	// Fail fast if SMTP is unreachable before fanning out workers.
	probe, err := m.dial()
	if err != nil {
		return nil, fmt.Errorf("smtp dial: %w", err)
	}
	_ = probe.Close()

	var (
		mu      sync.Mutex
		results []Result
	)

	batches := chunk(recipients, m.BatchSize)
	for bi, batch := range batches {
		jobs := make(chan string)
		var wg sync.WaitGroup

		workers := m.Concurrency
		if workers > len(batch) {
			workers = len(batch)
		}
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sc, err := m.dial()
				if err != nil {
					for email := range jobs {
						r := Result{Email: email, Error: err.Error()}
						m.logAttempt(ctx, n.Subject, r)
						mu.Lock()
						results = append(results, r)
						mu.Unlock()
					}
					return
				}
				defer sc.Close()
				for email := range jobs {
					r := m.sendOne(sc, n, email)
					m.logAttempt(ctx, n.Subject, r)
					mu.Lock()
					results = append(results, r)
					mu.Unlock()
				}
			}()
		}

		for _, email := range batch {
			jobs <- email
		}
		close(jobs)
		wg.Wait()

		if bi < len(batches)-1 && m.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			case <-time.After(m.BatchDelay):
			}
		}
	}

	return results, nil
}

func (m *Mailer) sendOne(sc gomail.SendCloser, n Newsletter, email string) Result {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", n.Subject)
	if n.Plain != "" {
		msg.SetBody("text/plain", n.Plain)
		msg.AddAlternative("text/html", n.HTML)
	} else {
		msg.SetBody("text/html", n.HTML)
	}

	if err := gomail.Send(sc, msg); err != nil {
		return Result{Email: email, Error: err.Error()}
	}
	return Result{Email: email, OK: true}
}

func (m *Mailer) logAttempt(ctx context.Context, subject string, r Result) {
	entry := models.MailLog{
		Email:     r.Email,
		Subject:   subject,
		Status:    models.MailStatusSent,
		CreatedAt: time.Now().UnixMilli(),
	}
	if !r.OK {
		entry.Status = models.MailStatusFailed
		entry.Error = r.Error
	}
	if _, err := m.store.Push(ctx, database.CollectionMailLogs, entry); err != nil {
		log.Printf("write mail log for %s: %v", r.Email, err)
	}
}

func chunk(all []string, size int) [][]string {
	if size <= 0 {
		size = defaultBatchSize
	}
	var batches [][]string
	for i := 0; i < len(all); i += size {
		end := i + size
		if end > len(all) {
			end = len(all)
		}
		batches = append(batches, all[i:end])
	}
	return batches
}
