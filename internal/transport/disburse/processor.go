// Package disburse executes processing payouts against the external
// disbursement gateway.
package disburse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/transport/disburse/client"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultGatewayTimeout         = 10 * time.Second
	defaultLimitPerIteration uint = 100
	defaultDisburseWorkers   uint = 10
)

// Processor polls processing payouts and pushes them to the gateway.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	disburseWorkers   uint
}

func New(svs Servicer, gatewayBaseURL string, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "disburse",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client.New(gatewayBaseURL),
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		disburseWorkers:   defaultDisburseWorkers,
	}
}

// SetLimitPerIteration caps the payouts taken per polling iteration.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetDisburseWorkers sets the number of concurrent gateway workers.
func (p *Processor) SetDisburseWorkers(workers uint) *Processor {
	p.disburseWorkers = workers
	return p
}

// Run loops until the context is cancelled. Each iteration fetches a batch of
// processing payouts, fans them out over the workers and writes the gateway
// results back through the service layer.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"disburseWorkers":   p.disburseWorkers,
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil {
				if !errors.Is(err, ErrNoPayouts) {
					p.l.WithError(err).Error("process error")
				}
				time.Sleep(time.Second) // keep the DB polling rate sane
			}
		}
	}
}

func (p *Processor) process(ctx context.Context) error {
	disbursements, produceErr := p.produce(ctx)
	if produceErr != nil {
		return fmt.Errorf("process: %w", produceErr)
	}

	results := p.runWorkers(ctx, disbursements)

	for _, result := range results {
		if result.Error != nil {
			// the payout stays in processing and is retried on a later poll
			continue
		}
		// ACCEPTED means the gateway has not settled yet, same treatment.
		if result.Status == client.StatusAccepted {
			continue
		}

		reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
		_, updErr := p.svs.CompleteDisbursement(reqCtx,
			result.Disbursement.Payout.ID,
			result.Status == client.StatusCompleted,
			result.FailureReason)
		cancel()
		if updErr != nil {
			return fmt.Errorf("process: %s", updErr.Error())
		}
	}

	return nil
}

type workerResult struct {
	WorkerID      uint
	Disbursement  *domain.PayoutDisbursement
	Error         error
	Status        client.StatusType
	FailureReason string
}

// runWorkers fans the batch out over the workers and collects their results.
func (p *Processor) runWorkers(
	ctx context.Context,
	disbursements []domain.PayoutDisbursement,
) []workerResult {
	var taskCh = make(chan *domain.PayoutDisbursement, len(disbursements))

	for i := range disbursements {
		taskCh <- &disbursements[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.disburseWorkers)) //nolint:gosec

	var resultCh = make(chan *workerResult, len(disbursements))

	for i := range p.disburseWorkers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(disbursements))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":   result.WorkerID,
			"payoutID": result.Disbursement.Payout.ID,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("disburse payout")
		} else {
			l.WithField("status", result.Status).Info("Success")
		}
		results = append(results, *result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.PayoutDisbursement,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask calls the gateway once per task, honouring 429 responses
// by waiting the advertised interval before retrying.
func (p *Processor) processWorkerTask(
	ctx context.Context,
	workerID uint,
	task *domain.PayoutDisbursement,
) *workerResult {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultGatewayTimeout)
		resp, err := p.client.Disburse(reqCtx, *task)
		cancel()

		if err != nil {
			result := workerResult{
				WorkerID:     workerID,
				Disbursement: task,
			}
			var tooManyReq *client.TooManyRequestError
			if errors.As(err, &tooManyReq) {
				select {
				case <-ctx.Done():
					result.Error = ctx.Err()
					return &result
				case <-time.After(tooManyReq.RetryAfter):
					continue
				}
			}
			result.Error = err
			return &result
		}

		return &workerResult{
			WorkerID:      workerID,
			Disbursement:  task,
			Status:        resp.Status,
			FailureReason: resp.FailureReason,
		}
	}
}

// produce fetches the next batch. Returns ErrNoPayouts on an empty poll.
func (p *Processor) produce(ctx context.Context) ([]domain.PayoutDisbursement, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	disbursements, err := p.svs.PayoutsForDisbursement(produceCtx, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}

	if len(disbursements) == 0 {
		return nil, ErrNoPayouts
	}
	return disbursements, nil
}
