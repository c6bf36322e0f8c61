// Package model implements the hierarchical composition core: sub-models and
// connections wired into a tree, driven through a staged, single-shot define
// lifecycle, and aggregated into one symbolic system for the
// equations-of-motion derivation.
//
// The package defines the shared capability set and the two concrete
// families:
//
//   - [Component]: what the assembler dispatches on (name, path, stage)
//   - [Base]: a sub-model node owning children, attachments, bodies, loads
//     and kinematic differential equations
//   - [ConnBase]: a connection joining attachments of distinct sub-models
//   - [Assembler]: runs the staged traversal and the aggregation walk
//   - [System]: the immutable aggregated artifact bridged to the solver
//
// Stage hooks are optional capability interfaces discovered by type
// assertion ([ObjectsDefiner], [KinematicsDefiner], ...): a concrete model
// embeds [Base] or [ConnBase] and implements only the hooks it needs.
//
// # Lifecycle
//
// define runs the five stages strictly one after another over the whole
// tree: connections, objects, kinematics, loads, constraints. Within a stage
// traversal is deterministic: children before parent in attachment order,
// and a node's declared connections immediately after the node's own hook.
// A hook may read any state produced by an earlier stage anywhere in the
// tree and nothing newer; violations surface as ErrNotReady wrapped with the
// offending node's path and stage. The lifecycle is single-shot: a second
// define attempt fails with ErrAlreadyDefined, and a failed run leaves the
// tree partially defined; discard it and compose a new one.
package model
