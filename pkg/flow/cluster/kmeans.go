package cluster

import (
	"math"
	"math/rand"
)

// kmeans partitions vectors into k clusters with Lloyd iterations over a
// k-means++ seeding. The random source is caller-provided so a fixed seed
// yields identical assignments run to run.
func kmeans(vectors [][]float64, k, maxIterations int, rng *rand.Rand) []int {
	n := len(vectors)
	dim := len(vectors[0])

	centroids := seedCentroids(vectors, k, rng)
	labels := make([]int, n)

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, vec := range vectors {
			best := nearestCentroid(vec, centroids)
			if best != labels[i] {
				labels[i] = best
				changed = true
			}
		}

		// Recompute centroids as cluster means.
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, vec := range vectors {
			c := labels[i]
			counts[c]++
			for d, x := range vec {
				sums[c][d] += x
			}
		}
		for c := range sums {
			if counts[c] == 0 {
				// Empty cluster: reseat its centroid on a random point
				// so k partitions survive.
				copy(sums[c], vectors[rng.Intn(n)])
				counts[c] = 1
			}
			inv := 1.0 / float64(counts[c])
			for d := range sums[c] {
				sums[c][d] *= inv
			}
		}
		centroids = sums

		if !changed && iter > 0 {
			break
		}
	}

	return labels
}

// seedCentroids picks k initial centroids with the k-means++ strategy:
// first uniformly, the rest proportionally to squared distance from the
// nearest centroid chosen so far.
func seedCentroids(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(vectors)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(vectors[rng.Intn(n)]))

	dists := make([]float64, n)
	for len(centroids) < k {
		var total float64
		for i, vec := range vectors {
			d := squaredDistance(vec, centroids[len(centroids)-1])
			if len(centroids) == 1 || d < dists[i] {
				dists[i] = d
			}
			total += dists[i]
		}

		if total == 0 {
			// All points coincide with existing centroids; fall back to
			// uniform picks.
			centroids = append(centroids, clone(vectors[rng.Intn(n)]))
			continue
		}

		target := rng.Float64() * total
		var cum float64
		pick := n - 1
		for i, d := range dists {
			cum += d
			if cum >= target {
				pick = i
				break
			}
		}
		centroids = append(centroids, clone(vectors[pick]))
	}

	return centroids
}

func nearestCentroid(vec []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := squaredDistance(vec, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
