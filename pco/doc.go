// Package pco is the dispatch layer of the Planning Center API client.
//
// An App (services, groups, people) owns Endpoints. An Endpoint knows its
// URL name, the JSON:API type of its resources and the chain of parent
// items it is nested under, and turns get, list, create, update and delete
// calls into HTTP requests:
//
//	/services/v2/service_types/12/plans?include=plan_times&where[title]=Easter
//
// List calls follow links.next until the collection is exhausted. Every
// response is passed through Stitch, which expands resources from the
// included array onto the primary data so that models can declare fields
// such as PlanTimes []PlanTime next to their relationship ids.
package pco
