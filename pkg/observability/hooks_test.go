package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnDecodeStart(ctx, "layout.toml")
	p.OnDecodeComplete(ctx, "layout.toml", 12, time.Millisecond, nil)
	p.OnLayoutStart(ctx, 12, "80x24")
	p.OnLayoutComplete(ctx, 12, time.Millisecond, nil)
	p.OnRenderStart(ctx, []string{"text"})
	p.OnRenderComplete(ctx, []string{"text"}, time.Millisecond, nil)

	m := NoopMemoHooks{}
	m.OnMemoStats(ctx, "text", 3, 1)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Memo().(NoopMemoHooks); !ok {
		t.Error("Memo() should return NoopMemoHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customMemo := &testMemoHooks{}
	SetMemoHooks(customMemo)
	if Memo() != customMemo {
		t.Error("SetMemoHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Memo().(NoopMemoHooks); !ok {
		t.Error("Reset() should restore NoopMemoHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testMemoHooks struct{ NoopMemoHooks }
