// Package venture defines the Project document model: one project per
// startup venture, with a fixed-shape data record aggregating every
// feature phase (idea intake, naming, branding, website, marketing,
// pitch deck, and the advisory simulations). Phases are independently
// optional and independently updatable; no cross-phase invariant is
// enforced here.
package venture
