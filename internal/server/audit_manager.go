package server

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ToolAudit batches tool-call entries and hands the batches to a small worker
// pool, so logging a call never blocks the request path. Entries still queued
// at shutdown are drained before the workers exit.
type ToolAudit struct {
	workerCount int
	batchSize   int
	timeout     time.Duration
	logger      *zap.Logger

	inputChan  chan ToolCallEntry
	batchChan  chan []ToolCallEntry
	shutdownCh chan struct{}
	once       sync.Once

	wg sync.WaitGroup
}

func NewToolAudit(workerCount, batchSize int, timeout time.Duration, logger *zap.Logger) *ToolAudit {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToolAudit{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		logger:      logger,
		inputChan:   make(chan ToolCallEntry, workerCount*batchSize*2),
		batchChan:   make(chan []ToolCallEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *ToolAudit) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}
}

func (m *ToolAudit) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("tool audit shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("tool audit shutdown interrupted")
		}
	})
}

func (m *ToolAudit) Record(ctx context.Context, entry ToolCallEntry) {
	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.logEntry(-1, entry)
	}
}

func (m *ToolAudit) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []ToolCallEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry, ok := <-m.inputChan:
			if !ok {
				return
			}

			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *ToolAudit) dispatchBatch(batch []ToolCallEntry) {
	batchCopy := make([]ToolCallEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		// Workers are saturated; log inline rather than dropping entries.
		m.logBatch(-1, batchCopy)
	}
}

func (m *ToolAudit) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batchChan:
			if !ok {
				return
			}
			m.logBatch(id, batch)
		case <-ctx.Done():
			for {
				select {
				case batch, ok := <-m.batchChan:
					if !ok {
						return
					}
					m.logBatch(id, batch)
				default:
					return
				}
			}
		}
	}
}

func (m *ToolAudit) logBatch(workerID int, batch []ToolCallEntry) {
	for _, entry := range batch {
		m.logEntry(workerID, entry)
	}
}

func (m *ToolAudit) logEntry(workerID int, entry ToolCallEntry) {
	m.logger.Info("tool call",
		zap.Int("worker", workerID),
		zap.Time("at", entry.Timestamp),
		zap.String("method", entry.Method),
		zap.String("path", entry.Path),
		zap.Int("status", entry.StatusCode),
		zap.String("user_id", entry.UserID),
		zap.Duration("duration", entry.Duration),
	)
}
