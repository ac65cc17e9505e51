package genetics

// AgentState describes where a single simulated agent sits in its run.
type AgentState int

const (
	NotStarted AgentState = iota
	Running
	Finished
)

// Simulation is the evaluation environment every genome is scored against.
// It is supplied by the caller; the genetics package only ever consumes it
// through this interface, whether driving one genome at a time or batching
// many agents through shared simulation time steps. Every method has
// identical semantics whether invoked per-agent or as a batch: restart
// returns to the initial state, get_state/get_data/apply_controls/get_score
// each operate against a single agentID or, in the _Batch forms, the whole
// roster at once in lockstep.
type Simulation interface {
	DataSize() int
	ControlsSize() int

	Restart()

	GetState(agentID int) AgentState
	GetData(agentID int) []float64
	ApplyControls(controls []float64, agentID int)
	GetScore(agentID int) float64

	// The _Batch forms take the window's agent count explicitly: the batched
	// evaluator may drive fewer agents than a full batch (the final window of
	// a population), and get_state/get_data need to know the active count
	// before any apply_controls call reveals it implicitly.
	GetStateBatch(n int) []AgentState
	GetDataBatch(n int) [][]float64
	ApplyControlsBatch(controls [][]float64)
	GetScoreBatch(n int) []float64
}
