// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package listview

import (
	"testing"
	"time"

	"github.com/scalefield/console/lib/console"
)

var epoch = time.Date(2026, 1, 14, 14, 23, 45, 0, time.UTC)

func TestControllerStartsClosed(t *testing.T) {
	controller := NewController(Timing{})
	snapshot := controller.Snapshot()
	if snapshot.Phase != Closed || snapshot.SelectedID != "" || snapshot.Visible() {
		t.Fatalf("initial snapshot = %+v", snapshot)
	}
	if controller.Timing() != DefaultTiming {
		t.Errorf("zero timing = %+v, want defaults", controller.Timing())
	}
}

func TestControllerOpenAndClose(t *testing.T) {
	controller := NewController(DefaultTiming)

	enter := controller.Select("847", epoch)
	if enter.Kind != EnterTimer || enter.Delay != DefaultTiming.EnterDelay {
		t.Fatalf("Select returned %+v", enter)
	}
	if controller.Phase() != Opening || controller.SelectedID() != "847" || controller.DisplayedID() != "847" {
		t.Fatalf("after Select: %+v", controller.Snapshot())
	}

	if !controller.Fire(enter, epoch.Add(10*time.Millisecond)) {
		t.Fatal("enter timer was not applied")
	}
	if controller.Phase() != Open {
		t.Fatalf("phase = %v, want open", controller.Phase())
	}

	exit, ok := controller.Close(epoch.Add(time.Second))
	if !ok || exit.Kind != ExitTimer || exit.Delay != DefaultTiming.ExitDuration {
		t.Fatalf("Close returned %+v, %v", exit, ok)
	}
	if controller.Phase() != Closing || controller.SelectedID() != "" || controller.DisplayedID() != "847" {
		t.Fatalf("after Close: %+v", controller.Snapshot())
	}

	if !controller.Fire(exit, epoch.Add(1300*time.Millisecond)) {
		t.Fatal("exit timer was not applied")
	}
	if snapshot := controller.Snapshot(); snapshot.Phase != Closed || snapshot.Visible() {
		t.Fatalf("after exit: %+v", snapshot)
	}
}

func TestControllerSelectSameIDToggles(t *testing.T) {
	controller := NewController(DefaultTiming)
	enter := controller.Select("847", epoch)
	controller.Fire(enter, epoch.Add(10*time.Millisecond))

	exit := controller.Select("847", epoch.Add(50*time.Millisecond))
	if exit.Kind != ExitTimer || controller.Phase() != Closing {
		t.Fatalf("second Select: timer %+v phase %v", exit, controller.Phase())
	}
	if controller.SelectedID() != "" || controller.DisplayedID() != "847" {
		t.Fatalf("during close: %+v", controller.Snapshot())
	}
	controller.Fire(exit, epoch.Add(350*time.Millisecond))
	if controller.DisplayedID() != "" {
		t.Errorf("displayed = %q after exit, want empty", controller.DisplayedID())
	}
}

func TestControllerToggleWhileOpening(t *testing.T) {
	controller := NewController(DefaultTiming)
	enter := controller.Select("847", epoch)
	controller.Select("847", epoch.Add(time.Millisecond))

	if controller.Phase() != Closing {
		t.Fatalf("phase = %v, want closing", controller.Phase())
	}
	if controller.Fire(enter, epoch.Add(10*time.Millisecond)) {
		t.Error("superseded enter timer was applied")
	}
	if controller.Phase() != Closing {
		t.Errorf("phase = %v after stale timer, want closing", controller.Phase())
	}
}

func TestControllerSwapKeepsPanelOnScreen(t *testing.T) {
	controller := NewController(DefaultTiming)
	enter := controller.Select("847", epoch)
	controller.Fire(enter, epoch.Add(10*time.Millisecond))

	swap := controller.Select("1203", epoch.Add(time.Second))
	snapshot := controller.Snapshot()
	if snapshot.Phase != Opening || snapshot.SelectedID != "1203" || snapshot.DisplayedID != "1203" {
		t.Fatalf("after swap: %+v", snapshot)
	}
	if !snapshot.Swapped {
		t.Error("swap from open should be marked Swapped")
	}
	if swap.Kind != EnterTimer {
		t.Fatalf("swap timer = %+v", swap)
	}
	controller.Fire(swap, epoch.Add(time.Second+10*time.Millisecond))
	if snapshot := controller.Snapshot(); snapshot.Phase != Open || !snapshot.Swapped {
		t.Errorf("after swap enter: %+v", snapshot)
	}
}

func TestControllerReopenWhileClosing(t *testing.T) {
	controller := NewController(DefaultTiming)
	enter := controller.Select("847", epoch)
	controller.Fire(enter, epoch.Add(10*time.Millisecond))
	exit, _ := controller.Close(epoch.Add(100 * time.Millisecond))

	reopen := controller.Select("456", epoch.Add(200*time.Millisecond))
	if controller.Fire(exit, epoch.Add(400*time.Millisecond)) {
		t.Error("superseded exit timer was applied")
	}
	snapshot := controller.Snapshot()
	if snapshot.Phase != Opening || snapshot.DisplayedID != "456" || snapshot.Swapped {
		t.Fatalf("after reopen: %+v", snapshot)
	}
	if snapshot.Shown <= 0 || snapshot.Shown >= 1 {
		t.Errorf("Shown = %v, want the part of the panel still on-screen", snapshot.Shown)
	}
	if !controller.Fire(reopen, epoch.Add(410*time.Millisecond)) {
		t.Error("reopen enter timer was not applied")
	}
	if shown := controller.Snapshot().Shown; shown != snapshot.Shown {
		t.Errorf("Shown changed across the enter timer: %v, want %v", shown, snapshot.Shown)
	}
}

func TestControllerCloseWhenClosed(t *testing.T) {
	controller := NewController(DefaultTiming)
	if _, ok := controller.Close(epoch); ok {
		t.Error("Close on a closed controller reported a change")
	}
	enter := controller.Select("847", epoch)
	controller.Fire(enter, epoch)
	controller.Close(epoch)
	if _, ok := controller.Close(epoch); ok {
		t.Error("Close while closing reported a change")
	}
}

func TestControllerFireMismatchedKind(t *testing.T) {
	controller := NewController(DefaultTiming)
	enter := controller.Select("847", epoch)
	wrong := Timer{Kind: ExitTimer, Generation: enter.Generation}
	if controller.Fire(wrong, epoch) {
		t.Error("exit timer applied during opening")
	}
	if controller.Phase() != Opening {
		t.Errorf("phase = %v, want opening", controller.Phase())
	}
}

func TestControllerDispose(t *testing.T) {
	controller := NewController(DefaultTiming)
	enter := controller.Select("847", epoch)
	controller.Dispose()
	if controller.Fire(enter, epoch.Add(10*time.Millisecond)) {
		t.Error("timer applied after Dispose")
	}
	if snapshot := controller.Snapshot(); snapshot.Phase != Closed || snapshot.Visible() {
		t.Errorf("after Dispose: %+v", snapshot)
	}
}

func TestControllerRetain(t *testing.T) {
	controller := NewController(DefaultTiming)
	controller.Select("847", epoch)
	if controller.Retain(func(id string) bool { return id == "847" }) {
		t.Error("Retain closed a panel whose record still exists")
	}
	if !controller.Retain(func(string) bool { return false }) {
		t.Error("Retain kept a panel whose record is gone")
	}
	if controller.Snapshot().Visible() {
		t.Error("panel still visible after Retain")
	}
}

// The failed build opens with Redeploy and View Logs and never offers
// Rollback.
func TestSelectFailedDeploymentActions(t *testing.T) {
	deployments := console.Seed().Deployments
	controller := NewController(DefaultTiming)
	enter := controller.Select("1198", epoch)
	controller.Fire(enter, epoch.Add(10*time.Millisecond))

	deployment, ok := Find(deployments, controller.DisplayedID())
	if !ok {
		t.Fatal("displayed deployment not found")
	}
	labels := console.ActionLabels(deployment.Actions())
	if len(labels) != 2 || labels[0] != "Redeploy" || labels[1] != "View Logs" {
		t.Errorf("actions = %v, want [Redeploy View Logs]", labels)
	}
	if console.HasAction(deployment.Actions(), console.ActionRollback.Label) {
		t.Error("failed deployment offers Rollback")
	}
}

func TestPhaseString(t *testing.T) {
	for phase, want := range map[Phase]string{Closed: "closed", Opening: "opening", Open: "open", Closing: "closing", Phase(9): "phase(9)"} {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
