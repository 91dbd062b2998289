package workloads

import (
	"context"
	"math"
	"math/rand"
)

const (
	defaultNBodyIterations = 500
	defaultRayIterations   = 20_000
	defaultBlurIterations  = 50

	nBodyCount = 50
	imageSide  = 64
)

type body struct {
	x, y   float64
	vx, vy float64
	m      float64
}

// PhysicsNBody integrates a 50-particle gravity simulation, O(N^2) force
// accumulation per step. Positions are seeded deterministically.
func PhysicsNBody(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultNBodyIterations)
	if err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(11))
	bodies := make([]body, nBodyCount)
	for i := range bodies {
		bodies[i] = body{x: rng.Float64(), y: rng.Float64(), m: 1}
	}

	const dt = 0.01
	for it := 0; it < iterations; it++ {
		for i := range bodies {
			var fx, fy float64
			for j := range bodies {
				if i == j {
					continue
				}
				dx := bodies[j].x - bodies[i].x
				dy := bodies[j].y - bodies[i].y
				dist := math.Sqrt(dx*dx+dy*dy) + 0.001
				f := (bodies[i].m * bodies[j].m) / (dist * dist)
				fx += f * dx / dist
				fy += f * dy / dist
			}
			bodies[i].vx += fx * dt
			bodies[i].vy += fy * dt
		}

		for i := range bodies {
			bodies[i].x += bodies[i].vx * dt
			bodies[i].y += bodies[i].vy * dt
		}
	}
	return int64(bodies[0].x * 1e6), nil
}

// RayTrace runs ray-sphere intersection checks with a jittered ray per
// iteration and counts the hits.
func RayTrace(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultRayIterations)
	if err != nil {
		return 0, err
	}

	const (
		sphereZ = 5.0
		sphereR = 1.0
	)

	var hits int64
	for i := 0; i < iterations; i++ {
		dx := float64(i%100-50) / 100.0
		dy := float64(i%100-50) / 100.0
		dz := 1.0

		mag := math.Sqrt(dx*dx + dy*dy + dz*dz)
		dx /= mag
		dy /= mag
		dz /= mag

		// Ray origin is the world origin, so oc is just the negated
		// sphere center.
		ocZ := -sphereZ

		a := dx*dx + dy*dy + dz*dz
		b := 2.0 * (ocZ * dz)
		c := ocZ*ocZ - sphereR*sphereR

		if b*b-4*a*c > 0 {
			hits++
		}
	}
	return hits, nil
}

// GaussianBlur repeatedly applies a 3x3 integer blur kernel to a 64x64
// buffer, exercising nested-loop pixel access and integer division.
func GaussianBlur(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultBlurIterations)
	if err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(23))
	const w, h = imageSide, imageSide
	img := make([]int64, w*h)
	for i := range img {
		img[i] = rng.Int63n(256)
	}

	kernel := [9]int64{
		1, 2, 1,
		2, 4, 2,
		1, 2, 1,
	}

	for it := 0; it < iterations; it++ {
		next := make([]int64, w*h)
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				var val int64
				for ky := -1; ky <= 1; ky++ {
					for kx := -1; kx <= 1; kx++ {
						p := img[(y+ky)*w+(x+kx)]
						k := kernel[(ky+1)*3+(kx+1)]
						val += p * k
					}
				}
				next[y*w+x] = val / 16
			}
		}
		img = next
	}
	return img[(h/2)*w+w/2], nil
}
