package charts

import (
	"errors"
	"fmt"

	"github.com/h2grid/h2grid-api/internal/types/business"
)

type fakeSurface struct {
	id       string
	owner    string
	attaches int
	detaches int
	painted  []byte
}

func (s *fakeSurface) ID() string { return s.id }

func (s *fakeSurface) Attach(owner string) error {
	if s.owner != "" {
		return fmt.Errorf("surface %s already bound to %s", s.id, s.owner)
	}
	s.owner = owner
	s.attaches++
	return nil
}

func (s *fakeSurface) Detach(owner string) error {
	if s.owner != owner {
		return fmt.Errorf("surface %s not bound to %s", s.id, owner)
	}
	s.owner = ""
	s.painted = nil
	s.detaches++
	return nil
}

func (s *fakeSurface) Paint(owner, _ string, image []byte) error {
	if s.owner != owner {
		return errors.New("paint from non-owner")
	}
	s.painted = image
	return nil
}

type fakeInstance struct {
	owner      string
	surface    Surface
	cfg        Config
	destroyErr error
	destroyed  bool
	destroys   int
}

func (i *fakeInstance) Slot() Slot     { return i.cfg.Slot }
func (i *fakeInstance) Kind() Kind     { return i.cfg.Kind }
func (i *fakeInstance) Config() Config { return i.cfg }

func (i *fakeInstance) Destroy() error {
	i.destroys++
	if i.destroyed {
		return nil
	}
	i.destroyed = true
	if err := i.surface.Detach(i.owner); err != nil {
		return err
	}
	return i.destroyErr
}

type fakeFactory struct {
	seq        int
	created    []*fakeInstance
	failSlots  map[Slot]error
	panicSlots map[Slot]bool
	destroyErr map[Slot]error
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		failSlots:  map[Slot]error{},
		panicSlots: map[Slot]bool{},
		destroyErr: map[Slot]error{},
	}
}

func (f *fakeFactory) Create(surface Surface, cfg Config) (Instance, error) {
	if f.panicSlots[cfg.Slot] {
		panic("renderer exploded")
	}
	if err := f.failSlots[cfg.Slot]; err != nil {
		return nil, err
	}
	f.seq++
	inst := &fakeInstance{
		owner:      fmt.Sprintf("chart-%d", f.seq),
		surface:    surface,
		cfg:        cfg,
		destroyErr: f.destroyErr[cfg.Slot],
	}
	if err := surface.Attach(inst.owner); err != nil {
		return nil, err
	}
	if err := surface.Paint(inst.owner, "text/plain", []byte(cfg.Title)); err != nil {
		return nil, err
	}
	f.created = append(f.created, inst)
	return inst, nil
}

// live counts instances that were created and not destroyed
func (f *fakeFactory) live() int {
	n := 0
	for _, inst := range f.created {
		if !inst.destroyed {
			n++
		}
	}
	return n
}

func newFakeSurfaces() map[Slot]*fakeSurface {
	out := make(map[Slot]*fakeSurface, len(Slots))
	for _, slot := range Slots {
		out[slot] = &fakeSurface{id: string(slot) + "-canvas"}
	}
	return out
}

func asSurfaces(in map[Slot]*fakeSurface) map[Slot]Surface {
	out := make(map[Slot]Surface, len(in))
	for slot, s := range in {
		out[slot] = s
	}
	return out
}

func snapshot(costs, revenue map[string]string) *business.DashboardData {
	return &business.DashboardData{
		LandOptimizer: &business.OptimizerResult{
			SuggestedLocations: []business.SuggestedLocation{{
				CostBreakdown:     costs,
				RevenueEstimation: revenue,
			}},
		},
	}
}
