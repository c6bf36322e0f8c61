// Package parts provides the concrete sub-models: ground, wheels, frames and
// rider segments, plus the composite bicycle models assembled from them.
//
// Each part owns its symbols, bodies and attachments and places its own
// geometry relative to one anchor attachment. Orienting and positioning the
// anchor itself is left to the joint (or composite) that mounts the part.
package parts
