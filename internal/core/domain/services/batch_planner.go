package services

import (
	"fmt"
	"math"
	"sort"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// kMeansMaxIterations caps the refinement loop so planning time is bounded
// regardless of input shape.
const kMeansMaxIterations = 20

// Algorithm selects the clustering strategy used by the planner.
type Algorithm string

const (
	// AlgorithmKMeans clusters orders by coordinates.
	AlgorithmKMeans Algorithm = "kmeans"
	// AlgorithmPincode groups orders by postal code.
	AlgorithmPincode Algorithm = "pincode"
)

// AlgorithmFromString parses the wire representation of a clustering
// algorithm.
func AlgorithmFromString(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case AlgorithmKMeans, AlgorithmPincode:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("algorithm",
			fmt.Errorf("%q is not a clustering algorithm", s))
	}
}

// Validate checks the algorithm is one of the defined variants.
func (a Algorithm) Validate() error {
	_, err := AlgorithmFromString(string(a))
	return err
}

func (a Algorithm) String() string { return string(a) }

// BatchProposal is one planned batch: member orders in packing order, their
// total weight, the geographic center, and the estimated route length.
type BatchProposal struct {
	OrderIDs    []kernel.UUID
	Weight      float64
	Center      kernel.GeoPoint
	EstimatedKm float64
}

// UnbatchableOrder names an order the planner could not place and why.
type UnbatchableOrder struct {
	OrderID kernel.UUID
	Reason  string
}

// Plan is the planner output: batch proposals plus the orders that fit no
// batch and stay pending.
type Plan struct {
	Proposals   []BatchProposal
	Unbatchable []UnbatchableOrder
}

// BatchPlanner groups pending orders into capacity-bounded batches. Planning
// is deterministic: the same pending set with the same limits always yields
// the same plan, so concurrent build requests converge on identical batches.
type BatchPlanner struct{}

// NewBatchPlanner creates a new BatchPlanner instance.
func NewBatchPlanner() BatchPlanner {
	return BatchPlanner{}
}

// Plan clusters the given pending orders and packs each cluster into batch
// proposals honoring both capacity limits. Orders heavier than maxWeight are
// reported as unbatchable. An empty order set yields an empty plan.
func (p BatchPlanner) Plan(
	orders []*order.Order,
	algorithm Algorithm,
	maxWeight float64,
	maxOrders int,
) (Plan, error) {
	if err := algorithm.Validate(); err != nil {
		return Plan{}, err
	}
	if maxWeight <= 0 {
		return Plan{}, errs.NewValueIsInvalidError("max_weight")
	}
	if maxOrders <= 0 {
		return Plan{}, errs.NewValueIsInvalidError("max_orders")
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return Plan{}, err
		}
	}
	if len(orders) == 0 {
		return Plan{}, nil
	}

	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt().Equal(sorted[j].CreatedAt()) {
			return sorted[i].CreatedAt().Before(sorted[j].CreatedAt())
		}
		return sorted[i].ID().String() < sorted[j].ID().String()
	})

	plan := Plan{}
	batchable := make([]*order.Order, 0, len(sorted))
	for _, o := range sorted {
		if o.TotalWeight() > maxWeight {
			plan.Unbatchable = append(plan.Unbatchable, UnbatchableOrder{
				OrderID: o.ID(),
				Reason: fmt.Sprintf("order weight %.2fkg exceeds batch capacity %.2fkg",
					o.TotalWeight(), maxWeight),
			})
			continue
		}
		batchable = append(batchable, o)
	}
	if len(batchable) == 0 {
		return plan, nil
	}

	var clusters [][]*order.Order
	switch algorithm {
	case AlgorithmPincode:
		clusters = clusterByPincode(batchable)
	default:
		clusters = clusterKMeans(batchable, maxWeight, maxOrders)
	}

	for _, cluster := range clusters {
		for _, members := range packFirstFit(cluster, maxWeight, maxOrders) {
			proposal, err := buildProposal(members)
			if err != nil {
				return Plan{}, err
			}
			plan.Proposals = append(plan.Proposals, proposal)
		}
	}
	return plan, nil
}

// clusterCount derives k from pincode spread and both capacity limits, so a
// single run can never need more batches than clusters.
func clusterCount(orders []*order.Order, maxWeight float64, maxOrders int) int {
	pincodes := make(map[string]struct{})
	totalWeight := 0.0
	for _, o := range orders {
		pincodes[o.Customer().Pincode()] = struct{}{}
		totalWeight += o.TotalWeight()
	}

	k := len(pincodes)
	if byWeight := int(math.Ceil(totalWeight / maxWeight)); byWeight > k {
		k = byWeight
	}
	if byCount := int(math.Ceil(float64(len(orders)) / float64(maxOrders))); byCount > k {
		k = byCount
	}
	if k < 1 {
		k = 1
	}
	if k > len(orders) {
		k = len(orders)
	}
	return k
}

// clusterKMeans runs a deterministic k-means over order coordinates. Seeds
// are evenly spaced over the creation-time ordering and distance ties go to
// the lowest cluster index, so repeated runs produce identical clusters.
func clusterKMeans(orders []*order.Order, maxWeight float64, maxOrders int) [][]*order.Order {
	k := clusterCount(orders, maxWeight, maxOrders)
	n := len(orders)

	centroids := make([]kernel.GeoPoint, k)
	for i := range centroids {
		centroids[i] = orders[i*n/k].Location()
	}

	assignment := make([]int, n)
	for iter := 0; iter < kMeansMaxIterations; iter++ {
		changed := false
		for i, o := range orders {
			best := 0
			bestDist := o.Location().DistanceKm(centroids[0])
			for c := 1; c < k; c++ {
				if d := o.Location().DistanceKm(centroids[c]); d < bestDist {
					best, bestDist = c, d
				}
			}
			if assignment[i] != best {
				assignment[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		for c := 0; c < k; c++ {
			var latSum, lngSum float64
			count := 0
			for i, o := range orders {
				if assignment[i] == c {
					latSum += o.Location().Lat()
					lngSum += o.Location().Lng()
					count++
				}
			}
			if count == 0 {
				continue
			}
			if centroid, err := kernel.NewGeoPoint(latSum/float64(count), lngSum/float64(count)); err == nil {
				centroids[c] = centroid
			}
		}
	}

	clusters := make([][]*order.Order, k)
	for i, o := range orders {
		clusters[assignment[i]] = append(clusters[assignment[i]], o)
	}

	result := make([][]*order.Order, 0, k)
	for _, cluster := range clusters {
		if len(cluster) > 0 {
			result = append(result, cluster)
		}
	}
	return result
}

// clusterByPincode groups orders by postal code, pincodes in ascending order.
func clusterByPincode(orders []*order.Order) [][]*order.Order {
	byPincode := make(map[string][]*order.Order)
	for _, o := range orders {
		pin := o.Customer().Pincode()
		byPincode[pin] = append(byPincode[pin], o)
	}

	pincodes := make([]string, 0, len(byPincode))
	for pin := range byPincode {
		pincodes = append(pincodes, pin)
	}
	sort.Strings(pincodes)

	clusters := make([][]*order.Order, 0, len(pincodes))
	for _, pin := range pincodes {
		clusters = append(clusters, byPincode[pin])
	}
	return clusters
}

// packFirstFit splits one cluster into capacity-respecting member lists,
// placing each order into the first open list that still fits it.
func packFirstFit(cluster []*order.Order, maxWeight float64, maxOrders int) [][]*order.Order {
	var groups [][]*order.Order
	weights := make([]float64, 0)

	for _, o := range cluster {
		placed := false
		for i := range groups {
			if len(groups[i]) < maxOrders && weights[i]+o.TotalWeight() <= maxWeight {
				groups[i] = append(groups[i], o)
				weights[i] += o.TotalWeight()
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []*order.Order{o})
			weights = append(weights, o.TotalWeight())
		}
	}
	return groups
}

func buildProposal(members []*order.Order) (BatchProposal, error) {
	ids := make([]kernel.UUID, 0, len(members))
	points := make([]kernel.GeoPoint, 0, len(members))
	weight := 0.0
	for _, o := range members {
		ids = append(ids, o.ID())
		points = append(points, o.Location())
		weight += o.TotalWeight()
	}

	center, err := CenterOf(points)
	if err != nil {
		return BatchProposal{}, err
	}

	return BatchProposal{
		OrderIDs:    ids,
		Weight:      weight,
		Center:      center,
		EstimatedKm: EstimateRouteKm(center, points),
	}, nil
}
