package weather

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// FetchResult 单个城市的查询结果
type FetchResult struct {
	City   string
	Report *Report
	Error  error
}

// FetchPool 并发查询多个城市的天气
type FetchPool struct {
	client  *Client
	workers int
	tasks   chan string
	results chan FetchResult
	wg      sync.WaitGroup
	pool    *ants.Pool
}

func NewFetchPool(client *Client, workers int) (*FetchPool, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}

	return &FetchPool{
		client:  client,
		workers: workers,
		tasks:   make(chan string, workers),
		results: make(chan FetchResult, workers),
		pool:    pool,
	}, nil
}

// FetchAll 查询全部城市，按完成顺序返回结果
func (p *FetchPool) FetchAll(ctx context.Context, cities []string) []FetchResult {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(func() { p.worker(ctx) }); err != nil {
			p.wg.Done()
		}
	}

	go func() {
		for _, city := range cities {
			p.tasks <- city
		}
		close(p.tasks)
	}()

	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	results := make([]FetchResult, 0, len(cities))
	for result := range p.results {
		results = append(results, result)
	}

	return results
}

func (p *FetchPool) worker(ctx context.Context) {
	defer p.wg.Done()
	for city := range p.tasks {
		report, err := p.client.Fetch(ctx, city)
		p.results <- FetchResult{
			City:   city,
			Report: report,
			Error:  err,
		}
	}
}

// Close 释放 goroutine 池
func (p *FetchPool) Close() {
	p.pool.Release()
}
