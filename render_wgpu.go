package manip

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/manip/shaders"
)

// GizmoVertex matches the WGSL VertexInput
type GizmoVertex struct {
	Pos   [3]float32
	Color [4]float32
}

// GizmoRenderPass draws a LineBatch through wgpu: a single line-list
// pipeline with per-vertex color and one camera uniform. Gizmos draw
// without depth testing so they stay on top of the scene.
type GizmoRenderPass struct {
	Pipeline     *wgpu.RenderPipeline
	BindGroup    *wgpu.BindGroup
	CameraBuffer *wgpu.Buffer
	VertexBuffer *wgpu.Buffer
	VertexCap    uint32
	Device       *wgpu.Device

	vertexCount uint32
}

func NewGizmoRenderPass(device *wgpu.Device, format wgpu.TextureFormat) (*GizmoRenderPass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "ManipGizmoShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.GizmoWGSL},
	})
	if err != nil {
		return nil, err
	}

	bgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "ManipGizmoCameraBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					MinBindingSize:   64, // mat4x4<f32>
					HasDynamicOffset: false,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		return nil, err
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "ManipGizmoPipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(GizmoVertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         0,
							ShaderLocation: 0,
						},
						{
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         12,
							ShaderLocation: 1,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
						Alpha: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyLineList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil, // gizmos render on top
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, err
	}

	cameraBuffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ManipGizmoCameraBuffer",
		Size:  64,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "ManipGizmoCameraBG",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  cameraBuffer,
				Size:    64,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &GizmoRenderPass{
		Pipeline:     pipeline,
		BindGroup:    bindGroup,
		CameraBuffer: cameraBuffer,
		Device:       device,
	}, nil
}

// Upload pushes the batch's line list and the camera matrix to the GPU.
// Call once per frame before Draw.
func (p *GizmoRenderPass) Upload(queue *wgpu.Queue, batch *LineBatch, camera *Camera) {
	viewProj := camera.ProjectionMatrix().Mul4(camera.ViewMatrix())
	queue.WriteBuffer(p.CameraBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&viewProj)), 64))

	p.vertexCount = uint32(len(batch.Lines) * 2)
	if p.vertexCount == 0 {
		return
	}

	vertices := make([]GizmoVertex, 0, p.vertexCount)
	for _, line := range batch.Lines {
		vertices = append(vertices,
			GizmoVertex{Pos: [3]float32{line.Start.X(), line.Start.Y(), line.Start.Z()}, Color: line.Color},
			GizmoVertex{Pos: [3]float32{line.End.X(), line.End.Y(), line.End.Z()}, Color: line.Color},
		)
	}

	sizeBytes := uint64(len(vertices) * int(unsafe.Sizeof(GizmoVertex{})))
	if p.VertexBuffer == nil || p.VertexCap < p.vertexCount {
		if p.VertexBuffer != nil {
			p.VertexBuffer.Release()
		}
		p.VertexCap = p.vertexCount + 256 // Margin
		p.VertexBuffer, _ = p.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "ManipGizmoVertexBuffer",
			Size:  uint64(p.VertexCap) * uint64(unsafe.Sizeof(GizmoVertex{})),
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
	}

	queue.WriteBuffer(p.VertexBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), sizeBytes))
}

// Draw records the gizmo draw call into an open render pass.
func (p *GizmoRenderPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.VertexBuffer == nil || p.vertexCount == 0 {
		return
	}

	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)
	pass.SetVertexBuffer(0, p.VertexBuffer, 0, p.VertexBuffer.GetSize())
	pass.Draw(p.vertexCount, 1, 0, 0)
}

// Release frees the GPU resources owned by the pass.
func (p *GizmoRenderPass) Release() {
	if p.VertexBuffer != nil {
		p.VertexBuffer.Release()
		p.VertexBuffer = nil
	}
	if p.CameraBuffer != nil {
		p.CameraBuffer.Release()
		p.CameraBuffer = nil
	}
	if p.BindGroup != nil {
		p.BindGroup.Release()
		p.BindGroup = nil
	}
	if p.Pipeline != nil {
		p.Pipeline.Release()
		p.Pipeline = nil
	}
}
