package metrics

const Namespace = "landscape"
