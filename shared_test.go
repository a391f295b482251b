package quickswipe

import "testing"

type animRecorder struct {
	starts  []AnimationTargets
	cancels int
}

func (r *animRecorder) OnAnimationStart(t AnimationTargets) { r.starts = append(r.starts, t) }
func (r *animRecorder) OnAnimationCanceled()                { r.cancels++ }

func TestListenerSet_AddRemove(t *testing.T) {
	shared := NewSharedState()
	ls := shared.NewListenerSet()
	a, b := &animRecorder{}, &animRecorder{}

	ls.AddListener(a)
	ls.AddListener(a)
	ls.AddListener(b)
	if ls.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ls.Len())
	}
	ls.RemoveListener(a)
	ls.RemoveListener(a)
	ls.RemoveListener(nil)
	if ls.Len() != 1 {
		t.Errorf("Len = %d, want 1", ls.Len())
	}

	var nilSet *ListenerSet
	nilSet.RemoveListener(b)
}

func TestListenerSet_StartRecordsTargetsForLateJoiners(t *testing.T) {
	shared := NewSharedState()
	ls := shared.NewListenerSet()
	early := &animRecorder{}
	ls.AddListener(early)

	ctrl := &fakeController{}
	ls.OnAnimationStart(AnimationTargets{Controller: ctrl, TaskIDs: []int{3}})
	if len(early.starts) != 1 {
		t.Fatalf("early starts = %d, want 1", len(early.starts))
	}

	late := &animRecorder{}
	shared.ApplyActiveAnimationState(late)
	if len(late.starts) != 1 || late.starts[0].TaskIDs[0] != 3 {
		t.Errorf("late starts = %+v", late.starts)
	}
}

func TestListenerSet_FinishClearsSharedState(t *testing.T) {
	shared := NewSharedState()
	ls := shared.NewListenerSet()
	rec := &animRecorder{}
	ls.AddListener(rec)
	ctrl := &fakeController{}
	ls.OnAnimationStart(AnimationTargets{Controller: ctrl})

	rec.starts[0].Controller.Finish(false)
	if shared.ActiveListener() != nil {
		t.Error("active listener should clear on finish")
	}
	if len(ctrl.finishes) != 1 || ctrl.finishes[0] {
		t.Errorf("finishes = %v, want [false]", ctrl.finishes)
	}

	late := &animRecorder{}
	shared.ApplyActiveAnimationState(late)
	if len(late.starts) != 0 {
		t.Error("no targets should be applied after finish")
	}
}

func TestListenerSet_CancelClearsSharedState(t *testing.T) {
	shared := NewSharedState()
	ls := shared.NewListenerSet()
	rec := &animRecorder{}
	ls.AddListener(rec)
	ls.OnAnimationCanceled()
	if rec.cancels != 1 {
		t.Errorf("cancels = %d, want 1", rec.cancels)
	}
	if shared.ActiveListener() != nil {
		t.Error("active listener should clear on cancel")
	}
}

func TestListenerSet_StaleSetDoesNotClearNewer(t *testing.T) {
	shared := NewSharedState()
	old := shared.NewListenerSet()
	fresh := shared.NewListenerSet()
	old.OnAnimationCanceled()
	if shared.ActiveListener() != fresh {
		t.Error("a stale set must not clear the active one")
	}
}

func TestListenerSet_ListenerRemovingItselfDuringDispatch(t *testing.T) {
	shared := NewSharedState()
	ls := shared.NewListenerSet()
	second := &animRecorder{}
	var first AnimationListener
	first = listenerFunc(func() { ls.RemoveListener(first) })
	ls.AddListener(first)
	ls.AddListener(second)

	ls.OnAnimationCanceled()
	if second.cancels != 1 {
		t.Errorf("second cancels = %d, want 1", second.cancels)
	}
	if ls.Len() != 1 {
		t.Errorf("Len = %d, want 1", ls.Len())
	}
}

type selfRemover struct{ fn func() }

func (s *selfRemover) OnAnimationStart(AnimationTargets) {}
func (s *selfRemover) OnAnimationCanceled()              { s.fn() }

func listenerFunc(fn func()) AnimationListener { return &selfRemover{fn: fn} }

func TestSharedState_ClearAllState(t *testing.T) {
	shared := NewSharedState()
	shared.NewListenerSet()
	shared.CanGestureBeContinued = true
	shared.GoingToHome = true
	shared.ClearAllState()
	if shared.ActiveListener() != nil || shared.CanGestureBeContinued || shared.GoingToHome {
		t.Errorf("state not cleared: %+v", shared)
	}
}
