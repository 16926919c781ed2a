// Package reaction defines environmental reactions: named tasks with the
// processes they trigger and the requisites gating them, indexed by name
// and numeric id.
package reaction

// Process describes one effect of a triggered reaction: the merit value it
// contributes, a resource type, and an optional instruction it forces on
// the organism.
type Process struct {
	Value  float64
	Type   string
	InstID int
}

// Requisite gates a reaction on prior reaction counts.
type Requisite struct {
	MinCount int
	MaxCount int
}

type Reaction struct {
	name       string
	id         int
	task       string
	processes  []*Process
	requisites []*Requisite
	active     bool
}

func New(name string, id int) *Reaction {
	return &Reaction{
		name:   name,
		id:     id,
		active: true,
	}
}

func (r *Reaction) Name() string { return r.name }
func (r *Reaction) ID() int      { return r.id }

func (r *Reaction) Task() string        { return r.task }
func (r *Reaction) SetTask(task string) { r.task = task }

func (r *Reaction) Active() bool          { return r.active }
func (r *Reaction) SetActive(active bool) { r.active = active }

// AddProcess appends a new process and returns it for the caller to fill
// in.
func (r *Reaction) AddProcess() *Process {
	p := &Process{InstID: -1}
	r.processes = append(r.processes, p)
	return p
}

// AddRequisite appends a new requisite and returns it for the caller to
// fill in.
func (r *Reaction) AddRequisite() *Requisite {
	req := &Requisite{MaxCount: int(^uint(0) >> 1)}
	r.requisites = append(r.requisites, req)
	return req
}

func (r *Reaction) Processes() []*Process    { return r.processes }
func (r *Reaction) Requisites() []*Requisite { return r.requisites }

// ModifyValue sets the value of process num. It reports false when no such
// process exists.
func (r *Reaction) ModifyValue(value float64, num int) bool {
	if num < 0 || num >= len(r.processes) {
		return false
	}
	r.processes[num].Value = value
	return true
}

// MultiplyValue scales the value of process num.
func (r *Reaction) MultiplyValue(mult float64, num int) bool {
	if num < 0 || num >= len(r.processes) {
		return false
	}
	r.processes[num].Value *= mult
	return true
}

// ModifyInst changes the instruction triggered by process num.
func (r *Reaction) ModifyInst(instID, num int) bool {
	if num < 0 || num >= len(r.processes) {
		return false
	}
	r.processes[num].InstID = instID
	return true
}

// GetValue returns the value of process num, or 0 when no such process
// exists.
func (r *Reaction) GetValue(num int) float64 {
	if num < 0 || num >= len(r.processes) {
		return 0
	}
	return r.processes[num].Value
}
