package imap

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	goimap "github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/xavierca1/inbox-crm/internal/usecase"
)

type PollerConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Mailbox     string
	Interval    time.Duration
	DialTimeout time.Duration
}

// Poller pulls unseen messages from the inbox on a fixed interval and runs
// each through the intake use case. Each cycle dials a fresh connection:
// polls are minutes apart and most IMAP servers drop idle sessions anyway.
// The envelope Message-Id doubles as the dedup key, so a crash between
// processing and flagging cannot create a second record.
type Poller struct {
	cfg       PollerConfig
	processUC *usecase.ProcessEmailUseCase
	logger    *slog.Logger
	polling   atomic.Bool
}

func NewPoller(cfg PollerConfig, processUC *usecase.ProcessEmailUseCase, logger *slog.Logger) *Poller {
	return &Poller{
		cfg:       cfg,
		processUC: processUC,
		logger:    logger,
	}
}

func (p *Poller) Start(ctx context.Context) {
	p.logger.Info("imap poller started", "host", p.cfg.Host, "interval", p.cfg.Interval)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.pollOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("imap poller stopped")
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

func (p *Poller) pollOnce(ctx context.Context) {
	// A slow mailbox must not stack polls.
	if !p.polling.CompareAndSwap(false, true) {
		p.logger.Warn("imap poll still running, skipping tick")
		return
	}
	defer p.polling.Store(false)

	if err := p.poll(ctx); err != nil {
		p.logger.Error("imap poll failed", "error", err)
	}
}

func (p *Poller) poll(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", p.cfg.Host, p.cfg.Port)

	// A bounded dial keeps a black-holed server from wedging the poller:
	// pollOnce holds the re-entrancy guard until this returns.
	timeout := p.cfg.DialTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	dialer := &net.Dialer{Timeout: timeout}

	c, err := client.DialWithDialerTLS(dialer, addr, nil)
	if err != nil {
		return fmt.Errorf("imap dial: %w", err)
	}
	defer c.Logout()

	if err := c.Login(p.cfg.Username, p.cfg.Password); err != nil {
		return fmt.Errorf("imap login: %w", err)
	}

	mailbox := p.cfg.Mailbox
	if mailbox == "" {
		mailbox = "INBOX"
	}
	if _, err := c.Select(mailbox, false); err != nil {
		return fmt.Errorf("imap select: %w", err)
	}

	criteria := goimap.NewSearchCriteria()
	criteria.WithoutFlags = []string{goimap.SeenFlag}

	uids, err := c.UidSearch(criteria)
	if err != nil {
		return fmt.Errorf("imap search: %w", err)
	}
	if len(uids) == 0 {
		return nil
	}

	p.logger.Info("imap poll found unseen messages", "count", len(uids))

	seqSet := new(goimap.SeqSet)
	seqSet.AddNum(uids...)

	section := &goimap.BodySectionName{}
	items := []goimap.FetchItem{goimap.FetchEnvelope, goimap.FetchUid, section.FetchItem()}

	messages := make(chan *goimap.Message, len(uids))
	done := make(chan error, 1)
	go func() {
		done <- c.UidFetch(seqSet, items, messages)
	}()

	var processed []uint32
	for msg := range messages {
		if ctx.Err() != nil {
			break
		}

		if err := p.processMessage(ctx, msg, section); err != nil {
			// Leave the message unseen; the next poll retries it.
			p.logger.Error("imap message processing failed", "uid", msg.Uid, "error", err)
			continue
		}
		processed = append(processed, msg.Uid)
	}

	if err := <-done; err != nil {
		return fmt.Errorf("imap fetch: %w", err)
	}

	if len(processed) > 0 {
		if err := p.markSeen(c, processed); err != nil {
			p.logger.Error("imap mark seen failed", "error", err)
		}
	}

	return ctx.Err()
}

func (p *Poller) processMessage(ctx context.Context, msg *goimap.Message, section *goimap.BodySectionName) error {
	if msg.Envelope == nil {
		return fmt.Errorf("message %d has no envelope", msg.Uid)
	}
	if len(msg.Envelope.From) == 0 {
		return fmt.Errorf("message %d has no sender", msg.Uid)
	}

	from := msg.Envelope.From[0]

	body := &ParsedBody{}
	if r := msg.GetBody(section); r != nil {
		parsed, err := ParseBody(r)
		if err != nil {
			return fmt.Errorf("parse body: %w", err)
		}
		body = parsed
	}
	if body.Text == "" {
		body.Text = msg.Envelope.Subject
	}

	input := usecase.ProcessEmailInput{
		FromEmail: from.Address(),
		FromName:  from.PersonalName,
		Subject:   msg.Envelope.Subject,
		Body:      body.Text,
		Phone:     body.Phone,
		MessageID: msg.Envelope.MessageId,
		Source:    "imap",
	}

	output, err := p.processUC.Execute(ctx, input)
	if err != nil {
		return err
	}

	if output.Skipped {
		p.logger.Info("imap message already processed", "uid", msg.Uid, "message_id", input.MessageID)
	}
	return nil
}

func (p *Poller) markSeen(c *client.Client, uids []uint32) error {
	seqSet := new(goimap.SeqSet)
	seqSet.AddNum(uids...)

	item := goimap.FormatFlagsOp(goimap.AddFlags, true)
	flags := []interface{}{goimap.SeenFlag}

	return c.UidStore(seqSet, item, flags, nil)
}
