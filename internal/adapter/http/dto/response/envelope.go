package response

// Envelope wraps every successful response body.
type Envelope struct {
	Success    bool        `json:"success"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       any         `json:"data"`
}

type Pagination struct {
	Total   int `json:"total"`
	Pages   int `json:"pages"`
	Current int `json:"current"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func List[T any](items []T) Envelope {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	return Envelope{Success: true, Count: &n, Data: items}
}
