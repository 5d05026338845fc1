package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"vecx/model"
	"vecx/stl"
	"vecx/transform"
	vm "vecx/vector_math"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Printf("Using GoLang: [%s]", runtime.Version())
}

func main() {
	configPath := flag.String("config", "", "YAML file describing transform steps and camera")
	stlPath := flag.String("stl", "", "binary STL file, a unit cube is used if empty")
	flag.Parse()

	cfg := &transform.Config{}
	if *configPath != "" {
		var err error
		if cfg, err = transform.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
	}

	mesh := model.NewCubeMesh()
	if *stlPath != "" {
		var err error
		if mesh, err = stl.ReadStlFile(*stlPath); err != nil {
			log.Fatalf("Failed to read stl file %s: %v", *stlPath, err)
		}
	}

	m, err := cfg.Matrix()
	if err != nil {
		log.Fatalf("Invalid transform: %v", err)
	}
	mesh.Transform(m)
	log.Printf("Model matrix:\n%s", mesh.ModelMat)

	lo, hi := mesh.Bounds()
	log.Printf("%d vertices, world bounds %s .. %s, size %s", len(mesh.Vertices), lo, hi, hi.Sub(lo))

	cam, err := cfg.BuildCamera()
	if err != nil {
		log.Fatalf("Invalid camera: %v", err)
	}
	viewProj := vm.Multiply(cam.GetProjection(), cam.GetView())
	ubo, err := model.NewUniformBufferObject(cam.GetView(), cam.GetProjection())
	if err != nil {
		log.Fatalf("Failed to build uniform buffer: %v", err)
	}
	log.Printf("Uniform buffer: %d bytes", len(ubo.Bytes()))

	for _, corner := range []vm.Vec3{lo, hi} {
		clip := vm.Vec4FromMatrix(vm.Multiply(viewProj, corner.Mat4(1)))
		if clip.W == 0 {
			log.Printf("Corner %s lies in the camera plane", corner)
			continue
		}
		log.Printf("Corner %s projects to %s", corner, clip.PerspectiveDivide())
	}
}
