// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog defines the planned kernel work items exported by issuegen.
// The catalog is fixed in source: it is built once at startup, read in authored
// order, and never loaded from or persisted to any external store.
package catalog

// IssueRecord describes one planned work item for bulk import into an issue
// tracker. Labels holds a single comma-joined token string rather than a
// structured list, matching what the import format expects.
type IssueRecord struct {
	Title     string
	Body      string
	Labels    string
	Milestone string
}

// Fields returns the record values in header order.
func (r IssueRecord) Fields() []string {
	return []string{r.Title, r.Body, r.Labels, r.Milestone}
}

// Header returns the CSV column names in fixed output order. Every data row
// aligns positionally with this header.
func Header() []string {
	return []string{"title", "body", "labels", "milestone"}
}

// Issues returns the full catalog in authored order. Callers must treat the
// returned slice as read-only.
func Issues() []IssueRecord {
	return issues
}

const kernelMilestone = "Oris 2.0 Kernel"

// One label set per epic; every record carries exactly one epic label plus a type label.
const (
	labelsK1 = "epic/K1-Execution-Determinism,type/feature"
	labelsK2 = "epic/K2-Replay-Engine,type/feature"
	labelsK3 = "epic/K3-Interrupt-Kernel,type/feature"
	labelsK4 = "epic/K4-Plugin-Runtime,type/feature"
	labelsK5 = "epic/K5-Distributed-Execution,type/feature"
)

var issues = []IssueRecord{
	{
		Title: "[K1] Implement ExecutionStep Contract Freeze",
		Body: "**Description:** Eliminate async side effects, hidden runtime mutations, and adapter nondeterminism by defining a strict, canonical execution contract.\n\n" +
			"**Tasks:**\n" +
			"- Implement the `ExecutionStep` trait (`execute(state, input) -> StepResult`).\n" +
			"- Enforce pure boundary conditions.\n" +
			"- Define and validate explicit inputs and outputs.\n\n" +
			"**Acceptance Criteria:** Adapters can only interact through the frozen step contract.",
		Labels:    labelsK1,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K1] Implement Runtime Effect Capture",
		Body: "**Description:** Intercept and record all side effects generated during execution.\n\n" +
			"**Tasks:**\n" +
			"- Introduce `RuntimeEffect` enum (`LLMCall`, `ToolCall`, `StateWrite`, `InterruptRaise`).\n" +
			"- Implement kernel-level hooks to log all instances of `RuntimeEffect` to the active thread context.\n\n" +
			"**Acceptance Criteria:** Zero uncaptured side effects leak into the execution state.",
		Labels:    labelsK1,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K1] Build Determinism Guard & Execution Modes",
		Body: "**Description:** Prevent nondeterministic operations from corrupting the state and introduce strict runtime modes.\n\n" +
			"**Tasks:**\n" +
			"- Implement `KernelMode` (`Normal`, `Record`, `Replay`, `Verify`).\n" +
			"- Add trap handlers to immediately fail execution on clock access, hardware randomness detection, or uncontrolled thread spawning.\n\n" +
			"**Acceptance Criteria:** Same run guarantees an identical event stream hash; replay mismatches are instantly detected and halted.",
		Labels:    labelsK1,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K2] Build Canonical Execution Log Store",
		Body: "**Description:** Move away from checkpoint-driven state management to an event-sourced log as the source of truth.\n\n" +
			"**Tasks:**\n" +
			"- Implement `ExecutionLog` struct (`thread_id`, `step_id`, `event_index`, `event`, `state_hash`).\n" +
			"- Refactor current checkpointing to act strictly as an optimization/snapshot layer.",
		Labels:    labelsK2,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K2] Develop Replay Cursor Engine",
		Body: "**Description:** Build the core algorithm to reconstruct state from historical events without triggering live side effects.\n\n" +
			"**Tasks:**\n" +
			"- Implement replay loop: Load checkpoint → Replay events → Inject recorded outputs → Reconstruct state.\n" +
			"- Ensure live tool execution is hard-disabled during replay.",
		Labels:    labelsK2,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K2] Implement Replay Verification API",
		Body: "**Description:** Create a diagnostic API to cryptographically verify the integrity of a run.\n\n" +
			"**Tasks:**\n" +
			"- Expose `oris kernel verify <thread_id>` CLI/API command.\n" +
			"- Implement validation logic for state hash equality, tool checksum matching, and interrupt consistency.",
		Labels:    labelsK2,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K2] Enable Branch Replay (Timeline Forking)",
		Body: "**Description:** Allow execution timelines to fork from a specific historical checkpoint.\n\n" +
			"**Tasks:**\n" +
			"- Implement logic to resume replay from checkpoint N, inject an alternate decision, and fork the event stream.\n\n" +
			"**Acceptance Criteria:** Reasoning timelines can be successfully reconstructed, audited, simulated, and forked.",
		Labels:    labelsK2,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K3] Define and Store Kernel Interrupt Object",
		Body: "**Description:** Standardize how interrupts are represented and persisted.\n\n" +
			"**Tasks:**\n" +
			"- Implement `Interrupt` struct (`id`, `thread_id`, `kind`, `payload_schema`, `created_at`).\n" +
			"- Ensure interrupts are flushed and stored alongside execution checkpoints.",
		Labels:    labelsK3,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K3] Implement Execution Suspension State Machine",
		Body: "**Description:** Handle the safe teardown of workers when an execution is paused.\n\n" +
			"**Tasks:**\n" +
			"- Implement kernel state transitions: `Running` → `Suspended` → `WaitingInput`.\n" +
			"- Ensure the worker safely exits and releases resources upon suspension.",
		Labels:    labelsK3,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K3] Enforce Replay-Based Resume Semantics",
		Body: "**Description:** Guarantee that resuming a suspended state does not rely on active memory.\n\n" +
			"**Tasks:**\n" +
			"- Implement resume logic strictly as: Replay + Inject Decision.\n" +
			"- Write tests to guarantee resuming N times yields identical results (idempotent resumes).",
		Labels:    labelsK3,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K3] Build Unified Interrupt Routing Layer",
		Body: "**Description:** Create a single resolver for all external interrupt sources.\n\n" +
			"**Tasks:**\n" +
			"- Implement `InterruptResolver` trait (`async fn resolve(interrupt) -> Value`).\n" +
			"- Map inputs from UI, agents, policy engines, and APIs through the resolver.\n\n" +
			"**Acceptance Criteria:** A process can be suspended, memory completely cleared, and successfully resumed days later.",
		Labels:    labelsK3,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K4] Define and Enforce Plugin Categories",
		Body: "**Description:** Standardize the types of plugins the kernel will recognize and load.\n\n" +
			"**Tasks:**\n" +
			"- Implement interfaces for `NodePlugin`, `ToolPlugin`, `MemoryPlugin`, `LLMAdapter`, and `SchedulerPlugin`.",
		Labels:    labelsK4,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K4] Implement Plugin Determinism Declarations",
		Body: "**Description:** Force plugins to declare their behavioral boundaries to the kernel.\n\n" +
			"**Tasks:**\n" +
			"- Require `PluginMetadata` (`deterministic`, `side_effects`, `replay_safe`) for all plugins.\n" +
			"- Build kernel enforcement logic (replay substitution, sandbox routing).",
		Labels:    labelsK4,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K4] Build Plugin Execution Sandbox",
		Body: "**Description:** Isolate plugin execution based on safety requirements.\n\n" +
			"**Tasks:**\n" +
			"- Implement execution mode routers (`InProcess`, `IsolatedProcess`, `Remote`).\n" +
			"- (Spike/Future): Blueprint WASM execution mode.",
		Labels:    labelsK4,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K4] Implement Plugin Version Negotiation & Dynamic Registry",
		Body: "**Description:** Prevent runtime corruption through strict validation and enable hot-loading.\n\n" +
			"**Tasks:**\n" +
			"- Add validation for `plugin_api_version`, `kernel_compat`, and `schema_hash` on load.\n" +
			"- Upgrade `NodePluginRegistry` to support dynamic hot-loading and unloading of validated plugins.\n\n" +
			"**Acceptance Criteria:** Third-party tools can be loaded and executed without threatening kernel determinism.",
		Labels:    labelsK4,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K5] Finalize Lease-Based Execution",
		Body: "**Description:** Formalize ownership of execution attempts.\n\n" +
			"**Tasks:**\n" +
			"- Implement `WorkerLease` to strictly enforce single-owner execution.\n" +
			"- Build lease expiry, recovery, and replay-restart logic.",
		Labels:    labelsK5,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K5] Implement Zero-Data-Loss Failure Recovery Loop",
		Body: "**Description:** Automate the recovery pipeline when a worker abruptly crashes.\n\n" +
			"**Tasks:**\n" +
			"- Implement the crash recovery pipeline: Lease expires → Checkpoint reloads → Execution replays → Dispatched to new worker.",
		Labels:    labelsK5,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K5] Build Context-Aware Scheduler Kernel",
		Body: "**Description:** Upgrade the dispatcher to route tasks intelligently across the cluster.\n\n" +
			"**Tasks:**\n" +
			"- Inject awareness of tenant limits, priority queues, plugin requirements, interrupt backlogs, and specific worker capabilities into the scheduling algorithm.",
		Labels:    labelsK5,
		Milestone: kernelMilestone,
	},
	{
		Title: "[K5] Implement Safe Backpressure Engine & Kernel Observability",
		Body: "**Description:** Protect the cluster from overload and provide deep kernel insights (not just standard logs).\n\n" +
			"**Tasks:**\n" +
			"- Build safe rejection mechanisms returning explicit `tenant_limit` reasons.\n" +
			"- Expose telemetry for Reasoning Timeline, Lease Graph, Replay Cost, and Interrupt Latency.\n\n" +
			"**Acceptance Criteria:** `kill -9` on an active worker → cluster restarts → resumes exactly where it left off with an identical reasoning outcome.",
		Labels:    labelsK5,
		Milestone: kernelMilestone,
	},
}
