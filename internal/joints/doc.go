// Package joints provides the concrete connections that realize kinematic
// couplings between sub-model attachments: revolute joints, welds, the rider
// seat and the nonholonomic tyre.
//
// A connection claims its attachments at construction and contributes state
// from the kinematics stage onward. By convention the child attachment is the
// anchor of the child sub-model: the joint orients the child's attachment
// frame relative to the parent's and positions the child's attachment point,
// and the child places its own bodies relative to that anchor.
package joints
