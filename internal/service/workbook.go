package service

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ofstlaxcala/lexnum/internal/domain"
	"github.com/ofstlaxcala/lexnum/internal/infra/observability"
	"github.com/ofstlaxcala/lexnum/internal/moneytext"
	"github.com/ofstlaxcala/lexnum/internal/sheet"
)

// Workbook converts every row of the numeric column of an uploaded workbook
// and appends the rendered phrases as a new column.
type Workbook struct {
	renderer   *moneytext.Renderer
	resolver   *sheet.Resolver
	textColumn string
	maxWorkers int
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewWorkbook creates the workbook service. textColumn names the appended
// column; maxWorkers bounds the per-batch rendering parallelism.
func NewWorkbook(
	renderer *moneytext.Renderer,
	resolver *sheet.Resolver,
	textColumn string,
	maxWorkers int,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Workbook {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Workbook{
		renderer:   renderer,
		resolver:   resolver,
		textColumn: textColumn,
		maxWorkers: maxWorkers,
		metrics:    metrics,
		logger:     logger,
	}
}

// Convert reads an .xlsx stream, resolves the numeric column, renders every
// row and returns the workbook with the text column appended. A row that
// fails to parse renders as an empty cell and is counted, never aborting the
// batch.
func (s *Workbook) Convert(ctx context.Context, r io.Reader) (*domain.ConvertedWorkbook, error) {
	ctx, span := tracer.Start(ctx, "Workbook.Convert")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("convert_workbook", time.Since(start))
	}()

	tbl, err := sheet.Read(r)
	if err != nil {
		return nil, &domain.ErrInvalidWorkbook{Err: err}
	}

	col, ok := s.resolver.ResolveIndex(tbl.Headers)
	if !ok {
		return nil, &domain.ErrColumnNotFound{Aliases: s.resolver.Aliases()}
	}

	batchID := uuid.New().String()
	span.SetAttributes(attribute.String("batch.id", batchID))

	// Rows are independent; render them in parallel, indexed so the output
	// column keeps the dataset's row order.
	results := make([]string, len(tbl.Rows))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for i := range tbl.Rows {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			texto, err := s.renderer.TryRender(tbl.Cell(i, col))
			if err != nil {
				failed.Add(1)
			}
			results[i] = texto
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Pad ragged rows to the original header width, then add the new cell.
	width := len(tbl.Headers)
	tbl.Headers = append(tbl.Headers, s.textColumn)
	for i := range tbl.Rows {
		row := make([]string, width, width+1)
		copy(row, tbl.Rows[i])
		tbl.Rows[i] = append(row, results[i])
	}

	var buf bytes.Buffer
	if err := sheet.Write(tbl, &buf); err != nil {
		return nil, err
	}

	nFailed := int(failed.Load())
	s.metrics.AddBatchRows(len(tbl.Rows)-nFailed, nFailed)

	s.logger.Info("workbook converted",
		zap.String("batch_id", batchID),
		zap.String("column", tbl.Headers[col]),
		zap.Int("rows", len(tbl.Rows)),
		zap.Int("failed_rows", nFailed),
	)
	if nFailed > 0 {
		s.logger.Warn("some rows could not be converted",
			zap.String("batch_id", batchID),
			zap.Int("failed_rows", nFailed),
		)
	}

	return &domain.ConvertedWorkbook{
		BatchID:    batchID,
		Column:     tbl.Headers[col],
		Rows:       len(tbl.Rows),
		FailedRows: nFailed,
		Data:       buf.Bytes(),
	}, nil
}
