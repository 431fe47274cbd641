// Package manip implements interactive 3D transformation manipulators
// (gizmos) for translating, rotating and scaling objects in a viewport.
//
// A manipulator owns a single ManipulatorCallback that tracks the value
// being edited. During a drag the callback only accumulates the candidate
// value; the externally owned target is written exactly once, when the
// caller commits the gesture via ApplyTransformation. The Manager type
// implements that caller-side input loop, including commit on release and
// cancel without commit.
//
// Rendering and input are consumed through narrow interfaces: a Camera
// provides screen/world projection, a RenderUtil receives wireframe draw
// calls (LineBatch buffers them on the CPU, GizmoRenderPass draws them
// through wgpu), and MouseState carries per-frame input.
package manip
