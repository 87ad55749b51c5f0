package orchestrator

import (
	"fmt"
	"sync"
	"time"
)

// historyCapacity bounds the execution history kept in memory.
const historyCapacity = 100

// Record is one completed workflow execution.
type Record struct {
	Workflow    string        `json:"workflow"`
	Timestamp   time.Time     `json:"timestamp"`
	SuccessRate float64       `json:"successRate"`
	Duration    time.Duration `json:"duration"`
}

// History is a bounded FIFO buffer of execution records. It is safe for
// concurrent use; once full, appending evicts the oldest record.
type History struct {
	mu      sync.Mutex
	records []Record
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{records: make([]Record, 0, historyCapacity)}
}

// Append records an execution, evicting the oldest entry when full.
func (h *History) Append(r Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.records) == historyCapacity {
		copy(h.records, h.records[1:])
		h.records = h.records[:historyCapacity-1]
	}
	h.records = append(h.records, r)
}

// Len reports the number of retained records.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// Snapshot copies the retained records, oldest first.
func (h *History) Snapshot() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// WorkflowStat aggregates executions of one workflow.
type WorkflowStat struct {
	Workflow   string `json:"workflow"`
	Executions int    `json:"executions"`
	AvgSuccess string `json:"avgSuccess"`
}

// Insights summarizes the execution history.
type Insights struct {
	Message            string         `json:"message,omitempty"`
	TotalExecutions    int            `json:"totalExecutions,omitempty"`
	AverageSuccessRate string         `json:"averageSuccessRate,omitempty"`
	WorkflowStats      []WorkflowStat `json:"workflowStats,omitempty"`
}

// Insights computes aggregate success rates per workflow. An empty
// history yields only an explanatory message.
func (h *History) Insights() Insights {
	records := h.Snapshot()
	if len(records) == 0 {
		return Insights{Message: "No execution history yet"}
	}

	var total float64
	type agg struct {
		count int
		sum   float64
	}
	perWorkflow := map[string]*agg{}
	var order []string
	for _, r := range records {
		total += r.SuccessRate
		a, ok := perWorkflow[r.Workflow]
		if !ok {
			a = &agg{}
			perWorkflow[r.Workflow] = a
			order = append(order, r.Workflow)
		}
		a.count++
		a.sum += r.SuccessRate
	}

	stats := make([]WorkflowStat, 0, len(order))
	for _, name := range order {
		a := perWorkflow[name]
		stats = append(stats, WorkflowStat{
			Workflow:   name,
			Executions: a.count,
			AvgSuccess: fmt.Sprintf("%.1f%%", a.sum/float64(a.count)*100),
		})
	}

	return Insights{
		TotalExecutions:    len(records),
		AverageSuccessRate: fmt.Sprintf("%.1f%%", total/float64(len(records))*100),
		WorkflowStats:      stats,
	}
}
