package clarifai

type apiRequest struct {
	Inputs []apiInput `json:"inputs"`
}

type apiInput struct {
	Data apiInputData `json:"data"`
}

type apiInputData struct {
	Image apiImage `json:"image"`
}

type apiImage struct {
	Base64 string `json:"base64"`
}

type apiResponse struct {
	Status  apiStatus   `json:"status"`
	Outputs []apiOutput `json:"outputs"`
}

type apiStatus struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

type apiOutput struct {
	Data struct {
		Concepts []apiConcept `json:"concepts"`
	} `json:"data"`
}

type apiConcept struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
