// Package batch contains the Batch aggregate: a capacity-bounded group of
// orders clustered by pickup geography and handed to a single driver as one
// route. The aggregate enforces weight and order-count limits and the
// pending, assigned, in progress, completed lifecycle.
package batch
